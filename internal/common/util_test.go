package common

import (
	"strings"
	"testing"
)

// ---------- MakeRandString ----------

func TestMakeRandString_LengthAndCharset(t *testing.T) {
	const n = 16
	s, err := MakeRandString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n {
		t.Fatalf("expected length %d, got %d", n, len(s))
	}
	for _, r := range s {
		if !strings.ContainsRune(randStringCharset, r) {
			t.Fatalf("unexpected character %q", r)
		}
	}
}

func TestMakeRandString_ZeroSize(t *testing.T) {
	s, err := MakeRandString(0)
	if err != nil {
		t.Fatalf("unexpected error for length=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for length=0, got %q", s)
	}
}

func TestMakeRandString_EntropyHint(t *testing.T) {
	const n = 32
	a, err := MakeRandString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := MakeRandString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == b {
		t.Logf("warning: two MakeRandString(%d) results are identical; extremely unlikely", n)
	}
}

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- GenerateRandByteArray ----------

func TestGenerateRandByteArray_Basic(t *testing.T) {
	const n = 24
	buf := GenerateRandByteArray(n)
	if buf == nil {
		t.Fatalf("expected non-nil slice")
	}
	if len(buf) != n {
		t.Fatalf("expected length %d, got %d", n, len(buf))
	}
}
