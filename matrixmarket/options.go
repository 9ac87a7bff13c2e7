// SPDX-License-Identifier: MIT

// Package matrixmarket: functional configuration for the writers.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper (internal).
package matrixmarket

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHeaderWidth is the number of spaces reserved for the dimension
	// line. 62 = 3 counts × 20 digits (max uint64) + 2 separators, so any
	// int-sized counts fit.
	DefaultHeaderWidth = 62

	// DefaultIndexMapping writes raw identifiers when false.
	DefaultIndexMapping = false
)

const (
	panicHeaderWidthInvalid = "matrixmarket: WithHeaderWidth: width must be >= 1"
	panicNilLogger          = "matrixmarket: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates Options. Applied in order; last writer wins.
type Option func(*Options)

// Options stores the effective configuration. Fields are unexported; build
// it with NewOptions.
type Options struct {
	headerWidth  int  // DefaultHeaderWidth
	indexMapping bool // DefaultIndexMapping
	logger       *slog.Logger
}

// HeaderWidth reports the reserved dimension-line width.
func (o Options) HeaderWidth() int { return o.headerWidth }

// IndexMapping reports whether endpoints are rewritten to 1-based indices.
func (o Options) IndexMapping() bool { return o.indexMapping }

// WithHeaderWidth sets the number of bytes reserved for the dimension line
// (excluding the line terminator).
//
// Behavior highlights:
//   - A width that is too small for the final counts makes Write fail with
//     ErrHeaderOverflow instead of overwriting edge lines.
//
// Errors:
//   - Panics when width < 1 (programmer error).
func WithHeaderWidth(width int) Option {
	if width < 1 {
		panic(panicHeaderWidthInvalid)
	}

	return func(o *Options) { o.headerWidth = width }
}

// WithIndexMapping toggles rewriting of edge endpoints to the 1-based
// position of the matching Node event (declaration order).
func WithIndexMapping(on bool) Option {
	return func(o *Options) { o.indexMapping = on }
}

// WithLogger routes debug output to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		headerWidth:  DefaultHeaderWidth,
		indexMapping: DefaultIndexMapping,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
