package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"
)

// failReader errors after serving n bytes.
type failReader struct {
	n   int
	err error
}

func (r *failReader) Read(p []byte) (int, error) {
	if r.n <= 0 {
		return 0, r.err
	}
	n := r.n
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		p[i] = 0xaa
	}
	r.n -= n
	return n, nil
}

func TestClampBitPattern(t *testing.T) {
	for i := 0; i < 64; i++ {
		var k [32]byte
		if _, err := rand.Read(k[:]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
		if err := Clamp(k[:]); err != nil {
			t.Fatalf("Clamp: %v", err)
		}
		if k[0]&7 != 0 {
			t.Fatalf("low three bits not cleared: %#x", k[0])
		}
		if k[31]&128 != 0 {
			t.Fatalf("top bit not cleared: %#x", k[31])
		}
		if k[31]&64 == 0 {
			t.Fatalf("bit 254 not set: %#x", k[31])
		}
	}
}

func TestClampIdempotent(t *testing.T) {
	var k [32]byte
	if _, err := rand.Read(k[:]); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	if err := Clamp(k[:]); err != nil {
		t.Fatalf("Clamp: %v", err)
	}
	once := k
	if err := Clamp(k[:]); err != nil {
		t.Fatalf("Clamp: %v", err)
	}
	if k != once {
		t.Fatal("clamping a clamped key must change nothing")
	}
}

func TestClampRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		if err := Clamp(make([]byte, n)); !errors.Is(err, ErrInvalidKeyLength) {
			t.Fatalf("length %d: got %v, want ErrInvalidKeyLength", n, err)
		}
	}
}

func TestNewPrivateKeyIsClamped(t *testing.T) {
	priv, err := NewPrivateKey(rand.Reader)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	if priv[0]&7 != 0 || priv[31]&128 != 0 || priv[31]&64 == 0 {
		t.Fatalf("generated key not clamped: %x", priv.Slice())
	}
}

func TestNewPrivateKeyEntropyFailure(t *testing.T) {
	cause := errors.New("closed device")
	if _, err := NewPrivateKey(&failReader{err: cause}); !errors.Is(err, ErrEntropyUnavailable) {
		t.Fatalf("got %v, want ErrEntropyUnavailable", err)
	}

	// A short read is just as unusable as no read.
	if _, err := NewPrivateKey(&failReader{n: 16, err: io.EOF}); !errors.Is(err, ErrEntropyUnavailable) {
		t.Fatalf("short read: got %v, want ErrEntropyUnavailable", err)
	}
}

func TestFingerprint(t *testing.T) {
	pub := bytes.Repeat([]byte{0x42}, 32)
	fp := Fingerprint(pub)
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fp))
	}
	if fp != Fingerprint(pub) {
		t.Fatal("fingerprint must be stable")
	}
	if fp == Fingerprint(bytes.Repeat([]byte{0x43}, 32)) {
		t.Fatal("different keys must not share a fingerprint")
	}
}
