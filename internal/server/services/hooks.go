package services

import (
	"context"
	"errors"

	"github.com/radblock/gifgate/internal/server/models"
	usersrepo "github.com/radblock/gifgate/internal/server/repositories/users"
)

// CardCharger bills the account when a verified upload is accepted. The
// step is a declared extension point; no billing backend exists yet.
type CardCharger interface {
	Charge(ctx context.Context, rec *models.UserRecord) error
}

// NoopCharger always succeeds.
type NoopCharger struct{}

func (NoopCharger) Charge(ctx context.Context, rec *models.UserRecord) error { return nil }

// RateLimitResetter returns a rate-limited account to ready. The daily
// schedule is an external concern; the server only exposes the
// transition itself.
type RateLimitResetter interface {
	Reset(ctx context.Context, email string) error
}

// ManualResetter performs the rate-limited -> ready transition when an
// operator asks for it. Any other state is left untouched, so a ban
// stays absorbing.
type ManualResetter struct {
	repo usersrepo.Repository
}

func NewManualResetter(repo usersrepo.Repository) *ManualResetter {
	return &ManualResetter{repo: repo}
}

func (r *ManualResetter) Reset(ctx context.Context, email string) error {
	rec, err := r.repo.Find(ctx, email)
	if err != nil {
		return err
	}

	if rec.State != models.StateRateLimited {
		return errors.New("account is not rate-limited")
	}

	rec.State = models.StateReady
	_, err = r.repo.Save(ctx, rec)
	return err
}
