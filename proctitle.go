package proctitle

import (
	"fmt"
	"sync"

	"go.dw1.io/proctitle/internal/spt"
)

var (
	initOnce sync.Once

	// state is nil until Init establishes a usable span; every writer
	// checks it and degrades to a no-op.
	state    *spt.State
	commSync bool
	lastErr  error
)

// Init discovers the argv/environ span and relocates everything living inside
// it, leaving the span free for title writes.
//
// Call it once at process start, before other goroutines read os.Args or the
// environment. There is no return value: on failure the error is recorded and
// later writes become no-ops. A second call is inert.
func Init(opts ...Option) {
	initOnce.Do(func() {
		cfg := defaultConfig()
		for _, opt := range opts {
			if opt == nil {
				continue
			}

			if err := opt(&cfg); err != nil {
				lastErr = err

				return
			}
		}

		commSync = cfg.commSync
		initialize(cfg)
	})
}

// Set overwrites the process title with a literal string.
//
// A no-op when Init never established a usable span. An empty title records
// an error and leaves the previous title displayed.
func Set(title string) {
	if state == nil {
		return
	}

	state.Set(title)
	syncComm()
}

// Setf overwrites the process title with a formatted string, rendered fmt
// style into a bounded buffer.
func Setf(format string, args ...any) {
	if state == nil {
		return
	}

	state.Setf(format, args...)
	syncComm()
}

// Reset restores the original argv[0] title.
func Reset() {
	if state == nil {
		return
	}

	state.Restore()
	syncComm()
}

func syncComm() {
	if !commSync {
		return
	}

	if err := setComm(state.Current()); err != nil {
		lastErr = fmt.Errorf("sync comm name: %w", err)
	}
}
