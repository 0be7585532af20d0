package keypair

import (
	"io"

	"github.com/theyusa/Rebecca-sub000/internal/crypto"
	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

// Service turns raw entropy into WireGuard-encoded Curve25519 key pairs.
type Service struct {
	entropy io.Reader
}

// New returns a keypair service drawing from the given entropy source,
// normally crypto/rand.Reader.
func New(entropy io.Reader) *Service { return &Service{entropy: entropy} }

// Generate draws 32 bytes of entropy, clamps them into a private key and
// derives the matching public key. Both halves come back base64-encoded.
func (s *Service) Generate() (domain.KeyPair, error) {
	priv, err := crypto.NewPrivateKey(s.entropy)
	if err != nil {
		return domain.KeyPair{}, err
	}
	pub := crypto.PublicKey(priv)
	pair := domain.KeyPair{
		PrivateKey: crypto.KeyToBase64(priv),
		PublicKey:  crypto.KeyToBase64(pub),
	}
	crypto.Wipe(priv[:])
	return pair, nil
}

// FromPrivateKey re-derives the public half of an existing encoded private
// key. The decoded scalar is consumed exactly as stored, with no re-clamp,
// so the result always matches the public key the scalar was enrolled with.
func (s *Service) FromPrivateKey(encoded string) (domain.KeyPair, error) {
	raw, err := crypto.KeyFromBase64(encoded)
	if err != nil {
		return domain.KeyPair{}, err
	}
	priv := domain.PrivateKey(raw)
	pub := crypto.PublicKey(priv)
	pair := domain.KeyPair{
		PrivateKey: crypto.KeyToBase64(priv),
		PublicKey:  crypto.KeyToBase64(pub),
	}
	crypto.Wipe(priv[:])
	crypto.Wipe(raw[:])
	return pair, nil
}

// Compile-time assertion that Service implements domain.KeypairService.
var _ domain.KeypairService = (*Service)(nil)
