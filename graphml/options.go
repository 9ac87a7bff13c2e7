// SPDX-License-Identifier: MIT

package graphml

import (
	"io"
	"log/slog"
)

// DefaultEdgeAttributes controls whether extra edge attributes land in
// Edge.Attrs. Off: Attrs is always empty.
const DefaultEdgeAttributes = false

const panicNilLogger = "graphml: WithLogger: logger must not be nil"

// Option configures Read.
type Option func(*options)

type options struct {
	edgeAttrs bool
	logger    *slog.Logger
}

// WithEdgeAttributes copies every edge attribute other than id, source and
// target into Edge.Attrs, keyed by local name (last occurrence wins).
// Namespace declarations are never copied.
func WithEdgeAttributes() Option {
	return func(o *options) { o.edgeAttrs = true }
}

// WithLogger routes debug output (accepted events, abort reason) to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{
		edgeAttrs: DefaultEdgeAttributes,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
