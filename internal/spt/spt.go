// Package spt implements the argv/environ span state machine behind
// proctitle: discovering the contiguous block the kernel handed the process,
// and writing bounded, zero-filled titles into it.
//
// The package performs raw pointer arithmetic over memory it does not own.
// Callers must evacuate every live string out of the discovered span before
// the first write; [go.dw1.io/proctitle.Init] does exactly that.
package spt

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// DefaultMaxLen is the default render-buffer capacity in bytes.
const DefaultMaxLen = 255

// ErrEmptyTitle indicates that a write rendered zero bytes.
//
// It is recorded on the state; the previously written title stays in place.
var ErrEmptyTitle = errors.New("rendered title is empty")

// State owns the span of process memory reclaimed from the original argv and
// environ strings, plus the fixed render buffer every write goes through.
//
// A State is created once per process and never torn down. Its write methods
// are not safe for concurrent use; callers serialize externally.
type State struct {
	// orig is a heap copy of the initial argv[0], restored by Restore.
	orig string

	// base points at the first byte of the original argv[0]. The span is
	// the size bytes starting there. nul is the offset of argv[0]'s
	// original terminator within the span.
	base unsafe.Pointer
	size int
	nul  int

	buf   []byte
	reset bool
	cur   int
	err   error
}

// Discover computes the single longest contiguous span covering args and envs
// and returns a State ready for writing. The caller passes the process's
// argument and environment strings while their data still points into the
// kernel-provided block.
//
// It returns nil when args[0] is absent or empty: title writes are then
// unavailable for the process lifetime.
//
// Strings are only counted while their start address is at or past the
// current high-water mark; aliased or out-of-order entries are skipped.
// Discover assumes args and envs still have the layout the kernel produced,
// so it must run before anything else rewrites them.
func Discover(args, envs []string, maxLen int) *State {
	if len(args) == 0 || args[0] == "" {
		return nil
	}

	base := unsafe.Pointer(unsafe.StringData(args[0]))
	nul := len(args[0])
	end := uintptr(base) + uintptr(nul) + 1

	scan := func(strs []string) {
		for _, s := range strs {
			if s == "" {
				continue
			}

			p := uintptr(unsafe.Pointer(unsafe.StringData(s)))
			if p < end {
				continue
			}

			end = p + uintptr(len(s)) + 1
		}
	}
	scan(args[1:])
	scan(envs)

	return &State{
		orig: strings.Clone(args[0]),
		base: base,
		size: int(end - uintptr(base)),
		nul:  nul,
		buf:  make([]byte, maxLen+1),
	}
}

// Original returns the heap copy of the initial argv[0].
func (s *State) Original() string { return s.orig }

// Size returns the span capacity in bytes, terminator included.
func (s *State) Size() int { return s.size }

// Err returns the most recently recorded write failure, if any.
func (s *State) Err() error { return s.err }

// Set writes title into the span.
//
// The title goes through the render buffer first: the caller may legally pass
// a string that still points into the span (the current title, for one), and
// the span is zero-filled before the copy lands.
func (s *State) Set(title string) {
	s.write(append(s.buf[:0], title...))
}

// Setf renders format with fmt semantics into the bounded buffer and writes
// the result. Output past the buffer capacity is truncated, not grown.
func (s *State) Setf(format string, args ...any) {
	s.write(fmt.Appendf(s.buf[:0], format, args...))
}

// Restore rewrites the original argv[0] content into the span.
func (s *State) Restore() {
	s.write(append(s.buf[:0], s.orig...))
}

// Current returns the title the span presently holds. The boundary fix-up
// bytes past the effective length are not part of the title.
func (s *State) Current() string {
	span := unsafe.Slice((*byte)(s.base), s.size)
	if !s.reset {
		// Nothing written yet: the span still holds the original argv[0].
		for i, b := range span {
			if b == 0 {
				return string(span[:i])
			}
		}

		return string(span)
	}

	return string(span[:s.cur])
}

// write copies title into the span under the clearing policy and fixes up the
// boundary at the original argv[0] terminator.
//
// The first write in the process lifetime zero-fills the entire span, erasing
// every leftover argv/environ byte exactly once. Later writes only clear up
// to the render-buffer size: nothing past it can hold stale bytes anymore,
// and no write extends beyond its own cleared range.
func (s *State) write(title []byte) {
	if len(title) == 0 {
		s.err = ErrEmptyTitle

		return
	}

	span := unsafe.Slice((*byte)(s.base), s.size)
	if !s.reset {
		clear(span)
		s.reset = true
	} else {
		clear(span[:min(len(s.buf), s.size)])
	}

	n := min(len(title), len(s.buf)-1, s.size-1)
	copy(span, title[:n])
	s.cur = n

	// Some ps code paths anchor on the historical end of argv[0], others on
	// the live terminator; keep both views consistent.
	switch {
	case n < s.nul:
		// Shorter than the original: a marker at the old terminator reads
		// as truncation instead of stale bytes.
		span[s.nul] = '.'
	case n == s.nul && n+1 < s.size:
		// Same length: a space plus a fresh terminator one byte later.
		span[s.nul] = ' '
		span[s.nul+1] = 0
	}
}
