// Package warp provides the HTTP implementation of the domain.Registrar
// interface.
//
// Registration is one JSON POST: the device's public key goes up, the
// account record (identifiers, peer parameters, tunnel addresses) comes
// back. The private key never leaves the machine; it is only folded into
// the returned record for local storage.
//
// Requests share the injected http.Client, so timeouts and proxies are the
// caller's choice. Non-2xx statuses are returned as errors carrying the
// path and status text.
package warp
