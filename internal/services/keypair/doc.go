// Package keypair generates and re-derives WireGuard key pairs.
//
// It layers the entropy source, RFC 7748 clamping, public key derivation and
// the textual key form into the domain.KeypairService contract used by the
// CLI and the registration flow.
package keypair
