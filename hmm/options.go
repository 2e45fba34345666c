// SPDX-License-Identifier: MIT

// Package hmm: functional configuration for Model.
// There is no package-level logger; tracing is switched per Model.

package hmm

import (
	"io"
	"log"
	"os"
)

// DefaultTrace leaves diagnostic tracing off.
const DefaultTrace = false

// defaultTracePrefix matches the CLI's "[LEVEL]: message" layout.
const defaultTracePrefix = "[DEBUG]: "

const panicNilLogger = "hmm: WithLogger: logger must be non-nil"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration of a Model.
type Options struct {
	trace  bool        // DefaultTrace
	logger *log.Logger // destination of trace lines; stderr when nil and trace is on
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{trace: DefaultTrace}
}

// WithTrace switches diagnostic tracing of paths and α values.
func WithTrace(enabled bool) Option {
	return func(o *Options) { o.trace = enabled }
}

// WithLogger sets the trace destination. It does not enable tracing by itself.
// Panics on a nil logger (programmer error).
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults and resolves the logger:
// a discarding logger when tracing is off, stderr when no logger was given.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case !o.trace:
		o.logger = log.New(io.Discard, "", 0)
	case o.logger == nil:
		o.logger = log.New(os.Stderr, defaultTracePrefix, 0)
	}

	return o
}
