// Package credential hashes and verifies passwords into a single
// self-describing encoded blob.
//
// Blob layout, base64 (std) encoded:
//
//	4-byte BE salt length | 4-byte BE iteration count | salt | derived key
//
// The blob carries everything needed to verify a password, so records can
// be checked without any out-of-band parameters.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/radblock/gifgate/internal/common"
)

const (
	saltLength = 16
	keyLength  = 32

	// DefaultIterations is the pbkdf2 cost used when none is configured.
	DefaultIterations = 10000

	headerLength = 8
)

// Codec derives and verifies password hashes with a fixed cost.
type Codec struct {
	iterations int
}

// NewCodec returns a Codec with the given pbkdf2 iteration count.
// Non-positive values fall back to DefaultIterations.
func NewCodec(iterations int) *Codec {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Codec{iterations: iterations}
}

// Hash derives a key from password with a fresh random salt and returns
// the encoded credential blob. The raw password bytes are wiped before
// returning. Fails with common.ErrCrypto if secure randomness is
// unavailable.
func (c *Codec) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}

	pw := []byte(password)
	key := pbkdf2.Key(pw, salt, c.iterations, keyLength, sha256.New)
	common.WipeByteArray(pw)

	buf := make([]byte, headerLength, headerLength+len(salt)+len(key))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(salt)))
	binary.BigEndian.PutUint32(buf[4:8], uint32(c.iterations))
	buf = append(buf, salt...)
	buf = append(buf, key...)

	return base64.StdEncoding.EncodeToString(buf), nil
}

// Verify re-derives a key from password using the salt and iteration
// count stored in encoded and compares it against the stored key in
// constant time.
//
// Returns common.ErrCredentialMismatch when the password does not match
// and common.ErrMalformedCredential when the blob cannot be parsed.
func (c *Codec) Verify(password, encoded string) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return common.ErrMalformedCredential
	}
	if len(raw) < headerLength {
		return common.ErrMalformedCredential
	}

	saltLen := int(binary.BigEndian.Uint32(raw[0:4]))
	iterations := int(binary.BigEndian.Uint32(raw[4:8]))
	if saltLen <= 0 || iterations <= 0 || len(raw) <= headerLength+saltLen {
		return common.ErrMalformedCredential
	}

	salt := raw[headerLength : headerLength+saltLen]
	stored := raw[headerLength+saltLen:]

	pw := []byte(password)
	candidate := pbkdf2.Key(pw, salt, iterations, len(stored), sha256.New)
	common.WipeByteArray(pw)

	if subtle.ConstantTimeCompare(stored, candidate) != 1 {
		return common.ErrCredentialMismatch
	}
	return nil
}
