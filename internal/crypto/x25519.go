package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

// KeySize is the byte length of Curve25519 private and public keys.
const KeySize = 32

var (
	// ErrEntropyUnavailable reports that the random source failed before a
	// full private key could be read.
	ErrEntropyUnavailable = errors.New("crypto: entropy source unavailable")

	// ErrInvalidKeyLength reports key material that is not exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("crypto: key must be 32 bytes")
)

// Clamp applies the RFC 7748 scalar clamp in place: the low three bits are
// cleared, the top bit is cleared and bit 254 is set.
func Clamp(k []byte) error {
	if len(k) != KeySize {
		return ErrInvalidKeyLength
	}
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
	return nil
}

// NewPrivateKey reads 32 bytes from r and clamps them into a Curve25519
// private key. Short or failed reads surface as ErrEntropyUnavailable with
// the underlying cause attached.
func NewPrivateKey(r io.Reader) (domain.PrivateKey, error) {
	var priv domain.PrivateKey
	if _, err := io.ReadFull(r, priv[:]); err != nil {
		return domain.PrivateKey{}, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	if err := Clamp(priv[:]); err != nil {
		return domain.PrivateKey{}, err
	}
	return priv, nil
}

// PublicKey derives the public half of priv against the fixed base point
// u = 9. The scalar is used exactly as stored: generation clamps before
// calling, re-derivation of imported keys does not.
func PublicKey(priv domain.PrivateKey) domain.PublicKey {
	var pub domain.PublicKey
	scalarMult((*[32]byte)(&pub), (*[32]byte)(&priv), &basePoint)
	return pub
}

// Fingerprint returns a short fingerprint of a public key for display and
// logs. It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}
