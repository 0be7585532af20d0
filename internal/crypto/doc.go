// Package crypto implements the Curve25519 primitives behind WireGuard key
// generation, self-contained and in constant time.
//
// Contents
//
//   - GF(2^255-19) arithmetic on 16-limb elements and the Montgomery ladder
//     (field.go, ladder.go)
//   - Private key creation and RFC 7748 clamping (NewPrivateKey, Clamp) and
//     public key derivation against the base point (PublicKey)
//   - The WireGuard textual key form: branch-free 44-character base64
//     encoding and strict decoding (KeyToBase64, KeyFromBase64)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Key-handling functions use the fixed-size array types from internal/domain
// to avoid accidental reallocations. Derivation consumes scalars exactly as
// stored; only NewPrivateKey clamps, so keys imported from elsewhere keep
// their original public halves.
package crypto
