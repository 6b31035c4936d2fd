// Package users persists user records through the external blob store.
package users

import (
	"context"

	"github.com/radblock/gifgate/internal/server/models"
)

// Repository loads and stores user records keyed by email.
type Repository interface {
	// Find returns the record or common.ErrorNotFound when absent.
	Find(ctx context.Context, email string) (*models.UserRecord, error)

	// FindOrCreate returns the stored record after verifying rawPassword
	// against it, or a new unsaved to-pend record when none exists. A
	// wrong password fails with common.ErrCredentialMismatch before any
	// state logic can run.
	FindOrCreate(ctx context.Context, email, rawPassword string) (*models.UserRecord, error)

	// Save writes the record under its email, last-writer-wins.
	Save(ctx context.Context, rec *models.UserRecord) (*models.UserRecord, error)
}
