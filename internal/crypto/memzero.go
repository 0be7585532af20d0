package crypto

import "runtime"

// Wipe zeroes the provided buffer. Use it on decoded private keys and
// plaintext account blobs once they have served their purpose. Best-effort:
// it reduces the chance of the compiler eliding the writes, nothing more.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Ensure b is considered live until after the loop.
	runtime.KeepAlive(&b)
}
