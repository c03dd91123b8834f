package proctitle

import (
	"fmt"

	"go.dw1.io/proctitle/internal/spt"
)

// Option configures [Init].
//
// Returning an error records the failure; Init then leaves the title span
// unestablished and every later write is a no-op.
type Option func(*config) error

type config struct {
	maxLen   int
	commSync bool
}

func defaultConfig() config {
	return config{maxLen: spt.DefaultMaxLen}
}

// WithMaxLength sets the render-buffer capacity in bytes. Titles longer than
// n are truncated. The default is 255.
func WithMaxLength(n int) Option {
	return func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: max length %d", ErrInvalidOption, n)
		}

		cfg.maxLen = n

		return nil
	}
}

// WithCommSync mirrors each successfully written title into the kernel comm
// name via prctl(PR_SET_NAME), so /proc/<pid>/comm and top's COMMAND column
// follow the title too. The kernel truncates comm to 15 bytes.
//
// Linux only; a no-op elsewhere.
func WithCommSync() Option {
	return func(cfg *config) error {
		cfg.commSync = true

		return nil
	}
}
