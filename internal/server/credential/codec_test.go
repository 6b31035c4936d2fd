package credential

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/radblock/gifgate/internal/common"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	c := NewCodec(1000)

	encoded, err := c.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if err := c.Verify("secret-password", encoded); err != nil {
		t.Fatalf("Verify should succeed, got %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	c := NewCodec(1000)

	encoded, err := c.Hash("right")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if err := c.Verify("wrong", encoded); !errors.Is(err, common.ErrCredentialMismatch) {
		t.Fatalf("want ErrCredentialMismatch, got %v", err)
	}
}

func TestHash_DistinctSalts(t *testing.T) {
	c := NewCodec(1000)

	a, err := c.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := c.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if a == b {
		t.Fatalf("two hashes of the same password should differ (distinct salts)")
	}

	if err := c.Verify("p", a); err != nil {
		t.Fatalf("first blob should verify: %v", err)
	}
	if err := c.Verify("p", b); err != nil {
		t.Fatalf("second blob should verify: %v", err)
	}
}

func TestVerify_MalformedBlobs(t *testing.T) {
	c := NewCodec(1000)

	cases := map[string]string{
		"not base64":     "%%%not-base64%%%",
		"too short":      base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
		"zero salt len":  base64.StdEncoding.EncodeToString(make([]byte, 16)),
		"truncated salt": base64.StdEncoding.EncodeToString(append([]byte{0, 0, 0, 16, 0, 0, 4, 0}, make([]byte, 8)...)),
		"missing key":    base64.StdEncoding.EncodeToString(append([]byte{0, 0, 0, 8, 0, 0, 4, 0}, make([]byte, 8)...)),
	}

	for name, blob := range cases {
		if err := c.Verify("p", blob); !errors.Is(err, common.ErrMalformedCredential) {
			t.Fatalf("%s: want ErrMalformedCredential, got %v", name, err)
		}
	}
}

func TestHash_BlobEncodesParameters(t *testing.T) {
	c := NewCodec(2500)

	encoded, err := c.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("blob is not base64: %v", err)
	}

	saltLen := binary.BigEndian.Uint32(raw[0:4])
	iterations := binary.BigEndian.Uint32(raw[4:8])

	if saltLen != saltLength {
		t.Fatalf("salt length = %d, want %d", saltLen, saltLength)
	}
	if iterations != 2500 {
		t.Fatalf("iterations = %d, want 2500", iterations)
	}
	if len(raw) != headerLength+saltLength+keyLength {
		t.Fatalf("blob length = %d, want %d", len(raw), headerLength+saltLength+keyLength)
	}
}

func TestVerify_SurvivesDifferentCodecCost(t *testing.T) {
	// the blob is self-describing; a codec with another configured cost
	// must still verify it
	old := NewCodec(500)
	encoded, err := old.Hash("p")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	current := NewCodec(10000)
	if err := current.Verify("p", encoded); err != nil {
		t.Fatalf("Verify should use stored iterations, got %v", err)
	}
}

func TestNewCodec_DefaultIterations(t *testing.T) {
	c := NewCodec(0)
	if c.iterations != DefaultIterations {
		t.Fatalf("iterations = %d, want %d", c.iterations, DefaultIterations)
	}
}
