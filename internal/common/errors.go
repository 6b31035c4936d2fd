package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// credential codec errors
	ErrCredentialMismatch  = errors.New("credential mismatch")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrCrypto              = errors.New("crypto failure")

	// state machine policy rejections; none of these mutate the record
	ErrVerificationRequired  = errors.New("verification required")
	ErrRateLimited           = errors.New("rate limited")
	ErrBanned                = errors.New("banned")
	ErrCodeMismatch          = errors.New("code mismatch")
	ErrNoVerificationPending = errors.New("no verification pending")

	// schema guard
	ErrMalformedInput = errors.New("malformed input")

	// infrastructure failures; never retried here, the caller decides
	ErrStorage   = errors.New("storage failure")
	ErrDelivery  = errors.New("delivery failure")
	ErrPromotion = errors.New("promotion failure")

	ErrInvalidToken = errors.New("invalid token")
)
