// Package lifecycle tracks process-wide library readiness.
//
// The flag is intentionally kept in an internal package so the public
// surface cannot mutate it except through sagecrypto.Initialize.
package lifecycle

import "sync/atomic"

var initialized atomic.Bool

// Initialize marks the library ready. Safe to call more than once.
func Initialize() {
	initialized.Store(true)
}

// Initialized reports whether Initialize has run.
func Initialized() bool {
	return initialized.Load()
}

// Reset clears the flag. Test hook only.
func Reset() {
	initialized.Store(false)
}
