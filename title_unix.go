// nolint
//go:build linux || darwin
// +build linux darwin

package proctitle

import (
	"fmt"
	"os"
	"strings"

	"go.dw1.io/proctitle/internal/spt"
)

// initialize discovers the span and evacuates every string that must outlive
// the relocation. Runs once, before the span is ever written.
func initialize(cfg config) {
	envs := os.Environ()

	st := spt.Discover(os.Args, envs, cfg.maxLen)
	if st == nil {
		lastErr = ErrUnavailable

		return
	}

	// os.Args[0] is this runtime's program-name global; hand later readers
	// the stable copy instead of the soon-overwritten span.
	os.Args[0] = st.Original()

	for i := 1; i < len(os.Args); i++ {
		os.Args[i] = strings.Clone(os.Args[i])
	}

	if err := relocateEnv(envs); err != nil {
		// The environment is still fully readable (os.Setenv mutates one
		// entry at a time and validates before touching anything), but the
		// span is left unestablished rather than half-clobberable.
		lastErr = err

		return
	}

	state = st
}

// relocateEnv rebacks every environment entry with heap memory.
//
// A plain os.Setenv is not enough: the runtime env map keeps its existing key
// string, which still points into the span. Unsetenv drops the stale key so
// the following Setenv inserts the cloned one.
func relocateEnv(envs []string) error {
	for _, kv := range envs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}

		key, value = strings.Clone(key), strings.Clone(value)

		// Setenv first: it validates key and value before the entry is
		// dropped, so a malformed pair aborts with the environment intact.
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("relocate %q: %w", key, err)
		}

		if err := os.Unsetenv(key); err != nil {
			return fmt.Errorf("relocate %q: %w", key, err)
		}

		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("relocate %q: %w", key, err)
		}
	}

	return nil
}
