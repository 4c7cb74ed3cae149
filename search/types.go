package search

import (
	"context"
	"io"
)

// deadlineCheckInterval bounds how often the local-search recursion probes
// ctx.Err(). A monotonic-clock read on every recursion entry would dominate
// the hot path on a deep, fast-rejecting search; probing every Nth entry
// instead bounds the worst-case overrun to at most deadlineCheckInterval
// extra recursion frames, which is negligible against any human-scale time
// limit.
const deadlineCheckInterval = 256

// Options configures Run. The zero value is valid: Verbose defaults to
// false and Log defaults to io.Discard.
type Options struct {
	// Verbose, if true, writes one line to Log per plateau the search
	// reaches (depth, current solution size) and one line when the
	// deadline fires.
	Verbose bool

	// Log receives verbose diagnostics; ignored if Verbose is false. A nil
	// Log with Verbose true is treated as io.Discard.
	Log io.Writer
}

func (o Options) normalize() Options {
	if o.Log == nil {
		o.Log = io.Discard
	}

	return o
}

// contextOrBackground returns ctx, or context.Background() if ctx is nil —
// callers may legitimately pass nil to mean "no deadline".
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
