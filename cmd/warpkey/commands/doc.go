// Package commands defines the warpkey CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate  Create a fresh key pair, or re-derive one with --from
//   - pubkey    Derive the public key for a private key read on stdin
//   - register  Enroll a public key with the API and store the account
//   - config    Render the stored account as a wg-quick profile
//   - version   Print build information
//
// # Implementation
//
// The root command builds the dependency graph (keypair service,
// registration client, encrypted account store, logger) before any
// subcommand runs, so handlers share one app context with timeouts and
// connection pooling.
package commands
