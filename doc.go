// Package proctitle changes the command line that ps-style tools display for
// the current process, on platforms without a native setproctitle call
// (Linux and Darwin).
//
// # Overview
//
// The only memory external process-listing tools can read is the contiguous
// block holding the process's original argv and environ strings. [Init] scans
// that block once to find its extent, copies every string that must survive
// (os.Args entries, every environment variable) into ordinary Go heap memory,
// and keeps the vacated bytes as the title buffer. [Set], [Setf], and [Reset]
// then overwrite the buffer in place:
//
//	func main() {
//		proctitle.Init()
//
//		proctitle.Setf("mydaemon: worker %d", id)
//		// ... ps now shows "mydaemon: worker 3"
//
//		proctitle.Reset() // back to the original argv[0]
//	}
//
// # Lifecycle
//
// Init must be called exactly once, as early as possible: before other
// goroutines read os.Args or the environment, and before anything retains a
// string backed by the original argv/environ block. A second Init call is
// inert. Writes are not goroutine-safe; callers that set titles from multiple
// goroutines serialize externally.
//
// Failures never propagate. When Init cannot establish a usable span (empty
// argv, an unsupported platform), every later write is a silent no-op: a
// cosmetic side channel must not be a reason the host process misbehaves.
//
// # Caveats
//
// The title can never grow beyond the original argv+environ footprint; longer
// titles are truncated. The render buffer caps a single title at 255 bytes
// unless [WithMaxLength] raises it. C code linked into the process that reads
// the libc environ directly observes the overwritten block, not the relocated
// Go environment.
package proctitle
