// Package sagecrypto is the process-wide entry point for the library.
//
// Call Initialize once before using the crypto, formats or httpsig
// packages. Version is callable at any time.
package sagecrypto

import "sagecrypto/internal/lifecycle"

// Version is the static build identifier of the library.
const Version = "1.1.0"

// Initialize readies the library for use. It is idempotent: calling it
// again after a successful call is a no-op and returns nil.
func Initialize() error {
	lifecycle.Initialize()
	return nil
}

// Initialized reports whether Initialize has been called.
func Initialized() bool {
	return lifecycle.Initialized()
}
