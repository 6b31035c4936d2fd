// Package services contains the upload-authorization state machine: it
// validates the account state, applies the once-per-day rate limit,
// hands out signed upload credentials, and promotes pending gifs on
// email verification.
package services

import (
	"context"
	"fmt"

	"github.com/radblock/gifgate/internal/common"
	"github.com/radblock/gifgate/internal/logging"
	"github.com/radblock/gifgate/internal/server/config"
	"github.com/radblock/gifgate/internal/server/models"
	usersrepo "github.com/radblock/gifgate/internal/server/repositories/users"
	"github.com/radblock/gifgate/internal/server/storage"
	"github.com/radblock/gifgate/internal/server/verification"
)

const gifContentType = "image/gif"

// UploadGrant is the success payload of a submit: a presigned PUT
// request plus where it points, and an optional advisory message.
type UploadGrant struct {
	SignedRequest string
	Bucket        string
	Key           string
	Message       string
}

// UploadService drives the per-user lifecycle:
//
//	to-pend --(code issued & emailed)--> pending
//	pending --(submitted code matches)--> ready
//	ready   --(submit accepted, signed url issued)--> rate-limited
//	any     --(administrative action)--> banned
type UploadService struct {
	repo       usersrepo.Repository
	store      storage.ObjectStore
	dispatcher *verification.Dispatcher
	charger    CardCharger
	logger     logging.Logger
	cfg        *config.Config
}

func NewUploadService(repo usersrepo.Repository, store storage.ObjectStore,
	dispatcher *verification.Dispatcher, charger CardCharger,
	logger logging.Logger, cfg *config.Config) *UploadService {

	if charger == nil {
		charger = NoopCharger{}
	}

	return &UploadService{
		repo:       repo,
		store:      store,
		dispatcher: dispatcher,
		charger:    charger,
		logger:     logger,
		cfg:        cfg,
	}
}

// Submit authorizes one gif upload for email. The password gate runs
// inside FindOrCreate before any state is consulted.
func (s *UploadService) Submit(ctx context.Context, email, password, filename string) (*UploadGrant, error) {
	rec, err := s.repo.FindOrCreate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	switch rec.State {
	case models.StateToPend:
		return s.submitUnverified(ctx, rec, filename)
	case models.StateReady:
		return s.submitVerified(ctx, rec, filename)
	case models.StatePending:
		return nil, common.ErrVerificationRequired
	case models.StateRateLimited:
		return nil, common.ErrRateLimited
	case models.StateBanned:
		return nil, common.ErrBanned
	default:
		return nil, fmt.Errorf("%w: unknown state %q", common.ErrMalformedInput, rec.State)
	}
}

// submitUnverified handles a first (or retried) submission. The record
// stays to-pend until the verification email has actually been sent;
// only then is the pending transition persisted, so a failed delivery
// leaves the account retryable instead of stuck with an unsent code.
func (s *UploadService) submitUnverified(ctx context.Context, rec *models.UserRecord, filename string) (*UploadGrant, error) {
	key, err := makeGifKey(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	rec.GifKey = key

	// account and key become durable before any external call
	if _, err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	signedURL, err := s.store.SignedPutURL(ctx, s.cfg.PendingBucket, key, gifContentType, true, s.cfg.SignedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	code, err := s.dispatcher.IssueCode(ctx, rec)
	if err != nil {
		return nil, err
	}

	rec.State = models.StatePending
	rec.VerificationCode = code
	if _, err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "upload authorized for unverified account", "email", rec.Email, "key", key)

	return &UploadGrant{
		SignedRequest: signedURL,
		Bucket:        s.cfg.PendingBucket,
		Key:           key,
		Message:       "your gif is on hold until you verify your email address.",
	}, nil
}

// submitVerified consumes the daily upload. The rate-limit flag is
// persisted before the signed url is requested: even if the presign
// fails, a second free upload stays impossible.
func (s *UploadService) submitVerified(ctx context.Context, rec *models.UserRecord, filename string) (*UploadGrant, error) {
	key, err := makeGifKey(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	rec.GifKey = key

	if err := s.charger.Charge(ctx, rec); err != nil {
		return nil, err
	}

	rec.State = models.StateRateLimited
	if _, err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	signedURL, err := s.store.SignedPutURL(ctx, s.cfg.PublicBucket, key, gifContentType, true, s.cfg.SignedURLTTL)
	if err != nil {
		s.logger.Error(ctx, "presign failed after rate limit was recorded", "email", rec.Email, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	s.logger.Info(ctx, "upload authorized", "email", rec.Email, "key", key)

	return &UploadGrant{
		SignedRequest: signedURL,
		Bucket:        s.cfg.PublicBucket,
		Key:           key,
	}, nil
}

// Verify checks the submitted code against a pending record and, on a
// match, promotes the pending gif into the public bucket and marks the
// account ready. Promotion runs before the state is persisted: a failed
// copy leaves the record pending so verification can be retried.
func (s *UploadService) Verify(ctx context.Context, email, code string) (*models.UserRecord, error) {
	rec, err := s.repo.Find(ctx, email)
	if err != nil {
		return nil, err
	}

	if rec.State != models.StatePending {
		return nil, common.ErrNoVerificationPending
	}

	if code != rec.VerificationCode {
		return nil, common.ErrCodeMismatch
	}

	if rec.GifKey != "" {
		if err := s.store.Copy(ctx, s.cfg.PendingBucket, rec.GifKey, s.cfg.PublicBucket, rec.GifKey, true); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrPromotion, err)
		}
	}

	rec.State = models.StateReady
	rec.VerificationCode = ""
	if _, err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account verified", "email", rec.Email, "key", rec.GifKey)

	return rec, nil
}

// Ban puts the account into the banned state. Reachable from any state,
// absorbing with respect to this service.
func (s *UploadService) Ban(ctx context.Context, email string) error {
	rec, err := s.repo.Find(ctx, email)
	if err != nil {
		return err
	}

	rec.State = models.StateBanned
	rec.VerificationCode = ""
	if _, err := s.repo.Save(ctx, rec); err != nil {
		return err
	}

	s.logger.Warn(ctx, "account banned", "email", rec.Email)

	return nil
}

// makeGifKey builds the storage key "<4 rand>-<4 rand>/<filename>".
func makeGifKey(filename string) (string, error) {
	a, err := common.MakeRandString(4)
	if err != nil {
		return "", err
	}
	b, err := common.MakeRandString(4)
	if err != nil {
		return "", err
	}
	return a + "-" + b + "/" + filename, nil
}
