package proctitle

import "errors"

// ErrUnavailable indicates that no usable title span exists: Init never ran,
// argv[0] was absent, or the platform has no writable argv block.
//
// It is recorded internally; title writes become silent no-ops.
var ErrUnavailable = errors.New("process title span is unavailable")

// ErrInvalidOption indicates that an option was malformed.
//
// It can be wrapped by option validation failures.
var ErrInvalidOption = errors.New("invalid proctitle option")
