package domain

import "fmt"

// ------------- Curve25519 -------------

type PrivateKey [32]byte
type PublicKey [32]byte

func (k PrivateKey) Slice() []byte { return k[:] }
func (k PublicKey) Slice() []byte  { return k[:] }

func MustPrivateKey(b []byte) PrivateKey {
	if len(b) != 32 {
		panic(fmt.Errorf("Curve25519 private: want 32 bytes, got %d", len(b)))
	}
	var out PrivateKey
	copy(out[:], b)
	return out
}

func MustPublicKey(b []byte) PublicKey {
	if len(b) != 32 {
		panic(fmt.Errorf("Curve25519 public: want 32 bytes, got %d", len(b)))
	}
	var out PublicKey
	copy(out[:], b)
	return out
}

// ------------- Key pair -------------

// KeyPair carries both halves of a Curve25519 key pair in WireGuard's
// 44-character base64 form, ready for config files and registration calls.
type KeyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}
