package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/radblock/gifgate/internal/common"
	"github.com/radblock/gifgate/internal/server/credential"
	"github.com/radblock/gifgate/internal/server/models"
	"github.com/radblock/gifgate/internal/server/schema"
	"github.com/radblock/gifgate/internal/server/storage"
)

// BlobRepository stores each user record as a JSON blob in the
// user-record bucket, keyed by email (case-sensitive).
type BlobRepository struct {
	store  storage.ObjectStore
	codec  *credential.Codec
	bucket string
}

func NewBlobRepository(store storage.ObjectStore, codec *credential.Codec, bucket string) *BlobRepository {
	return &BlobRepository{store: store, codec: codec, bucket: bucket}
}

func (r *BlobRepository) Find(ctx context.Context, email string) (*models.UserRecord, error) {
	data, err := r.store.Get(ctx, r.bucket, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	rec := &models.UserRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedInput, err)
	}

	// stored records are not trusted either
	if err := schema.ValidateStruct(*rec); err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *BlobRepository) FindOrCreate(ctx context.Context, email, rawPassword string) (*models.UserRecord, error) {
	rec, err := r.Find(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}

		encoded, err := r.codec.Hash(rawPassword)
		if err != nil {
			return nil, err
		}

		// new, unsaved record; the caller decides when it becomes durable
		return &models.UserRecord{
			Email:      email,
			Credential: encoded,
			State:      models.StateToPend,
		}, nil
	}

	if err := r.codec.Verify(rawPassword, rec.Credential); err != nil {
		return nil, err
	}

	return rec, nil
}

func (r *BlobRepository) Save(ctx context.Context, rec *models.UserRecord) (*models.UserRecord, error) {
	if err := schema.ValidateStruct(*rec); err != nil {
		return nil, err
	}

	// Message is json:"-" so the ephemeral annotation never hits the store
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	if err := r.store.Put(ctx, r.bucket, rec.Email, data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return rec, nil
}
