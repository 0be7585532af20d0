// Package store provides file-based persistence for the device registration.
//
// The account record is serialized as JSON, sealed with ChaCha20-Poly1305
// under a scrypt-derived key, and written atomically via temp-file rename.
// All methods are concurrency-safe via internal locking. The store file
// lives under the user's configured home directory.
package store
