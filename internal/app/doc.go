// Package app wires application dependencies for the CLI.
//
// It builds the keypair service, registration client and account store from
// Config, exposing them via the App struct for commands to use, along with
// the shared zerolog logger.
package app
