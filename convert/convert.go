// SPDX-License-Identifier: MIT

// Package convert runs the GraphML → MatrixMarket pipeline: read every
// event, then write the matrix. The writer never starts unless the reader
// fully succeeded.
package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/graphml2mm/ctxlog"
	"github.com/katalvlaran/graphml2mm/graphml"
	"github.com/katalvlaran/graphml2mm/matrixmarket"
)

// Options configures one conversion. The zero value uses the package
// defaults of graphml and matrixmarket.
type Options struct {
	// HeaderWidth overrides matrixmarket.DefaultHeaderWidth when > 0.
	HeaderWidth int

	// IndexMapping writes 1-based node positions instead of raw ids.
	IndexMapping bool

	// EdgeAttributes keeps extra edge attributes on the events.
	EdgeAttributes bool
}

// Stats summarizes a successful read.
type Stats struct {
	Nodes int
	Edges int
}

func (o Options) validate() error {
	if o.HeaderWidth < 0 {
		return fmt.Errorf("header width %d: %w", o.HeaderWidth, ErrInvalidOptions)
	}

	return nil
}

func (o Options) readerOptions(l *slog.Logger) []graphml.Option {
	opts := []graphml.Option{graphml.WithLogger(l)}
	if o.EdgeAttributes {
		opts = append(opts, graphml.WithEdgeAttributes())
	}

	return opts
}

func (o Options) writerOptions(l *slog.Logger) []matrixmarket.Option {
	opts := []matrixmarket.Option{
		matrixmarket.WithLogger(l),
		matrixmarket.WithIndexMapping(o.IndexMapping),
	}
	if o.HeaderWidth > 0 {
		opts = append(opts, matrixmarket.WithHeaderWidth(o.HeaderWidth))
	}

	return opts
}

// Run reads GraphML from r and writes the MatrixMarket file to w.
//
// The logger is taken from ctx (see ctxlog). ctx is checked before each
// phase; a cancelled context returns ctx.Err() unwrapped.
//
// Errors:
//   - ErrInvalidOptions for a bad Options value.
//   - *Error{Kind: KindRead} wrapping a graphml.ReaderError.
//   - *Error{Kind: KindWrite} wrapping matrixmarket.ErrHeaderOverflow or
//     matrixmarket.ErrUnknownVertex.
//   - *Error{Kind: KindIO} for failures of r or w.
func Run(ctx context.Context, r io.Reader, w io.WriteSeeker, opts Options) (Stats, error) {
	if err := opts.validate(); err != nil {
		return Stats{}, err
	}
	logger := ctxlog.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	events, err := graphml.Read(r, opts.readerOptions(logger)...)
	if err != nil {
		return Stats{}, readError(err)
	}

	stats := tally(events)
	logger.Debug("convert: input read", "nodes", stats.Nodes, "edges", stats.Edges)

	if err = ctx.Err(); err != nil {
		return stats, err
	}
	wopts := opts.writerOptions(logger)
	effective := matrixmarket.NewOptions(wopts...)
	logger.Debug("convert: writing matrix",
		"header_width", effective.HeaderWidth(), "index_mapping", effective.IndexMapping())
	if err = matrixmarket.Write(w, events, wopts...); err != nil {
		return stats, writeError(err)
	}

	logger.Info("convert: matrix written", "rows", stats.Nodes, "cols", stats.Nodes, "entries", stats.Edges)

	return stats, nil
}

// Files converts the GraphML file at inPath into a MatrixMarket file at
// outPath. The output is created (or truncated) only after the input was
// opened, and removed again if the conversion fails.
func Files(ctx context.Context, inPath, outPath string, opts Options) (Stats, error) {
	logger := ctxlog.FromContext(ctx)

	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, ioError("open input", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return Stats{}, ioError("create output", err)
	}

	stats, err := Run(ctx, bufio.NewReader(in), out, opts)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = ioError("close output", cerr)
	}
	if err != nil {
		if rerr := os.Remove(outPath); rerr != nil {
			logger.Warn("convert: could not remove partial output", "path", outPath, "error", rerr)
		}

		return stats, err
	}

	return stats, nil
}

func tally(events []graphml.Event) Stats {
	var s Stats
	for _, ev := range events {
		switch ev.(type) {
		case graphml.Node:
			s.Nodes++
		case graphml.Edge:
			s.Edges++
		}
	}

	return s
}

func readError(err error) error {
	var re graphml.ReaderError
	if errors.As(err, &re) {
		return &Error{Op: "read graphml", Kind: KindRead, Err: err}
	}

	return ioError("read graphml", err)
}

func writeError(err error) error {
	if errors.Is(err, matrixmarket.ErrHeaderOverflow) || errors.Is(err, matrixmarket.ErrUnknownVertex) {
		return &Error{Op: "write matrixmarket", Kind: KindWrite, Err: err}
	}

	return ioError("write matrixmarket", err)
}
