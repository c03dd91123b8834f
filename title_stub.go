//go:build !(linux || darwin)
// +build !linux,!darwin

package proctitle

// Platforms with a native title facility, or without a writable argv block,
// are out of scope: the span stays unestablished and writes are silent no-ops.
func initialize(config) {
	lastErr = ErrUnavailable
}
