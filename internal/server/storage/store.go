// Package storage provides the blob key-value interface the rest of the
// server talks to, plus the S3 implementation.
package storage

import (
	"context"
	"time"
)

// ObjectStore is the external blob store. Three logical buckets are in
// use: the public gif bucket, the pending (unverified) gif bucket, and
// the user-record bucket.
type ObjectStore interface {
	// Get returns the object bytes or common.ErrorNotFound when absent.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// Put writes the object, overwriting any previous version.
	Put(ctx context.Context, bucket, key string, data []byte) error

	// Copy duplicates an object across buckets; the source copy is left
	// in place. With publicRead the destination gets a public-read ACL.
	Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string, publicRead bool) error

	// SignedPutURL returns a presigned PUT url for a direct client upload.
	SignedPutURL(ctx context.Context, bucket, key, contentType string, publicRead bool, ttl time.Duration) (string, error)
}
