package users

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/radblock/gifgate/internal/common"
	"github.com/radblock/gifgate/internal/server/credential"
	"github.com/radblock/gifgate/internal/server/models"
)

// --- fakes ---

type fakeStore struct {
	objects map[string][]byte

	getErr error
	putErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return data, nil
}

func (f *fakeStore) Put(ctx context.Context, bucket, key string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[bucket+"/"+key] = data
	return nil
}

func (f *fakeStore) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string, publicRead bool) error {
	return nil
}

func (f *fakeStore) SignedPutURL(ctx context.Context, bucket, key, contentType string, publicRead bool, ttl time.Duration) (string, error) {
	return "", nil
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newRepo(store *fakeStore) *BlobRepository {
	return NewBlobRepository(store, credential.NewCodec(500), "radblock-users")
}

// --- tests ---

func TestFind_NotFound(t *testing.T) {
	repo := newRepo(newFakeStore())

	_, err := repo.Find(context.Background(), "ghost@x.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestFind_StorageError(t *testing.T) {
	store := newFakeStore()
	store.getErr = errBoom{}
	repo := newRepo(store)

	_, err := repo.Find(context.Background(), "a@x.com")
	if !errors.Is(err, common.ErrStorage) {
		t.Fatalf("want ErrStorage, got %v", err)
	}
}

func TestFind_CorruptedRecord(t *testing.T) {
	store := newFakeStore()
	store.objects["radblock-users/a@x.com"] = []byte("{not-json")
	repo := newRepo(store)

	_, err := repo.Find(context.Background(), "a@x.com")
	if !errors.Is(err, common.ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
}

func TestFind_InvalidStoredRecord(t *testing.T) {
	// verification code present outside pending violates the invariant
	store := newFakeStore()
	store.objects["radblock-users/a@x.com"] = []byte(
		`{"email":"a@x.com","credential":"x","state":"ready","verification_code":"red-fox-lamp"}`)
	repo := newRepo(store)

	_, err := repo.Find(context.Background(), "a@x.com")
	if !errors.Is(err, common.ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
}

func TestFindOrCreate_NewAccount(t *testing.T) {
	store := newFakeStore()
	repo := newRepo(store)

	rec, err := repo.FindOrCreate(context.Background(), "a@x.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("FindOrCreate error: %v", err)
	}

	if rec.State != models.StateToPend {
		t.Fatalf("state = %s, want to-pend", rec.State)
	}
	if rec.Credential == "" || rec.Credential == "hunter2hunter2" {
		t.Fatalf("credential must be the encoded blob, got %q", rec.Credential)
	}

	// the new record is unsaved until the caller persists it
	if len(store.objects) != 0 {
		t.Fatalf("expected no writes, got %d", len(store.objects))
	}
}

func TestFindOrCreate_PasswordGate(t *testing.T) {
	store := newFakeStore()
	repo := newRepo(store)

	rec, err := repo.FindOrCreate(context.Background(), "a@x.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("FindOrCreate error: %v", err)
	}
	if _, err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if _, err := repo.FindOrCreate(context.Background(), "a@x.com", "hunter2hunter2"); err != nil {
		t.Fatalf("right password rejected: %v", err)
	}

	_, err = repo.FindOrCreate(context.Background(), "a@x.com", "wrong-password")
	if !errors.Is(err, common.ErrCredentialMismatch) {
		t.Fatalf("want ErrCredentialMismatch, got %v", err)
	}
}

func TestSave_RoundTripAndNoEphemeralFields(t *testing.T) {
	store := newFakeStore()
	repo := newRepo(store)

	rec := &models.UserRecord{
		Email:      "a@x.com",
		Credential: "blob",
		State:      models.StatePending,

		VerificationCode: "red-fox-lamp",
		GifKey:           "ab1-cd2/cat.gif",
		Message:          "ephemeral",
	}

	if _, err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	raw := store.objects["radblock-users/a@x.com"]
	var persisted map[string]any
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("stored blob is not json: %v", err)
	}
	if _, ok := persisted["Message"]; ok {
		t.Fatalf("ephemeral message must not be persisted")
	}

	got, err := repo.Find(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got.VerificationCode != "red-fox-lamp" || got.GifKey != "ab1-cd2/cat.gif" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Message != "" {
		t.Fatalf("message should not survive persistence, got %q", got.Message)
	}
}

func TestSave_RejectsInvalidRecord(t *testing.T) {
	repo := newRepo(newFakeStore())

	rec := &models.UserRecord{
		Email:      "a@x.com",
		Credential: "blob",
		State:      models.StatePending, // pending without a code
	}

	_, err := repo.Save(context.Background(), rec)
	if !errors.Is(err, common.ErrMalformedInput) {
		t.Fatalf("want ErrMalformedInput, got %v", err)
	}
}

func TestSave_StorageError(t *testing.T) {
	store := newFakeStore()
	store.putErr = errBoom{}
	repo := newRepo(store)

	rec := &models.UserRecord{Email: "a@x.com", Credential: "blob", State: models.StateReady}

	_, err := repo.Save(context.Background(), rec)
	if !errors.Is(err, common.ErrStorage) {
		t.Fatalf("want ErrStorage, got %v", err)
	}
}
