package proctitle

import "sync"

// LastErr exposes the internally recorded failure for tests.
func LastErr() error { return lastErr }

// ResetForTest clears the package-level state so tests can exercise Init
// paths that never establish a span. It must not be used after a successful
// Init: re-scanning relocated memory is undefined.
func ResetForTest() {
	initOnce = sync.Once{}
	state = nil
	commSync = false
	lastErr = nil
}
