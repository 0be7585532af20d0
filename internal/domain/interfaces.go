package domain

// KeypairService produces WireGuard-encoded Curve25519 key pairs.
type KeypairService interface {
	// Generate draws a fresh private key from entropy, clamps it, and
	// derives its public half.
	Generate() (KeyPair, error)

	// FromPrivateKey re-derives the public half of an existing encoded
	// private key. The key bytes are used exactly as decoded.
	FromPrivateKey(encoded string) (KeyPair, error)
}

// Registrar is how we enroll a public key with the central API.
type Registrar interface {
	Register(pair KeyPair) (Account, error)
}

// AccountStore persists your device registration, encrypted at rest.
type AccountStore interface {
	SaveAccount(passphrase string, a Account) error
	LoadAccount(passphrase string) (Account, error)
}
