// Package memzero wipes sensitive byte slices.
//
// Zero goes through crypto/subtle so the compiler cannot prove the write
// dead and elide it; the guarantee is the point of the call, not the
// effect. Callers use it to bound the in-memory lifetime of key material
// they have copied out of a KeyPair.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros. A nil or empty slice is a no-op.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}
