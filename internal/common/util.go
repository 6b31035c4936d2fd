// Package common provides the shared error taxonomy plus utility
// functions for random strings and secure memory wiping.
package common

import (
	"crypto/rand"
	"math/big"
)

const randStringCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MakeRandString generates a random alphanumeric string of the given
// length, suitable for storage-key prefixes.
//
// It returns an error if the random number generator fails.
func MakeRandString(length int) (string, error) {

	b := make([]byte, length)
	max := big.NewInt(int64(len(randStringCharset)))

	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = randStringCharset[n.Int64()]
	}

	return string(b), nil
}

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the random number generator fails.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is useful for removing sensitive data such as raw passwords from
// memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
