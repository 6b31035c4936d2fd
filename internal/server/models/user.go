// Package models defines the persistent entities of the server.
package models

// State is the per-user lifecycle position. Transitions only move along
// the defined edges; banned is reachable from any state and absorbing.
type State string

const (
	// StateToPend: account created, verification email not yet sent.
	StateToPend State = "to-pend"
	// StatePending: verification code issued and emailed, not yet confirmed.
	StatePending State = "pending"
	// StateReady: email verified, one upload available.
	StateReady State = "ready"
	// StateRateLimited: upload consumed; reset is an external operation.
	StateRateLimited State = "rate-limited"
	// StateBanned: administratively blocked.
	StateBanned State = "banned"
)

// UserRecord is the sole persistent entity, stored as a JSON blob in the
// user-record bucket keyed by email (case-sensitive).
//
// Invariants:
//   - Credential always holds the encoded pbkdf2 blob, never a raw password.
//   - VerificationCode is present iff State == pending.
//   - GifKey is assigned once per submission cycle.
type UserRecord struct {
	Email            string `json:"email" validate:"required,email"`
	Credential       string `json:"credential" validate:"required"`
	State            State  `json:"state" validate:"required,oneof=to-pend pending ready rate-limited banned"`
	VerificationCode string `json:"verification_code,omitempty"`
	GifKey           string `json:"gif_key,omitempty"`

	// Message is a response-only annotation; it is never persisted.
	Message string `json:"-"`
}
