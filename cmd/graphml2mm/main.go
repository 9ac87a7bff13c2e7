// SPDX-License-Identifier: MIT

// Command graphml2mm converts a GraphML file into a MatrixMarket
// coordinate file describing the graph's adjacency structure.
//
// Usage:
//
//	graphml2mm [options] <input.graphml> <output.mtx>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/graphml2mm/config"
	"github.com/katalvlaran/graphml2mm/convert"
	"github.com/katalvlaran/graphml2mm/ctxlog"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run holds the whole command so tests can drive it without a process.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flagSet := flag.NewFlagSet("graphml2mm", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
graphml2mm - convert a GraphML graph into a MatrixMarket adjacency file.

Usage:
  graphml2mm [options] <input.graphml> <output.mtx>

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL profile.")
	logLevelFlag := flagSet.String("log-level", "", "Override the log level: 'debug', 'info', 'warn', 'error'.")
	indexFlag := flagSet.Bool("index-mapping", false, "Write 1-based node positions instead of raw node ids.")
	attrsFlag := flagSet.Bool("edge-attrs", false, "Keep extra edge attributes while reading.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flagSet.NArg() != 2 {
		fmt.Fprintln(stderr, "graphml2mm: expected <input.graphml> <output.mtx>")
		flagSet.Usage()
		return exitUsage
	}

	profile := config.Default()
	if *configFlag != "" {
		p, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintln(stderr, "graphml2mm:", err)
			return exitUsage
		}
		profile = p
	}
	if *logLevelFlag != "" {
		profile.Log.Level = *logLevelFlag
	}

	logger, err := profile.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "graphml2mm:", err)
		return exitUsage
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	opts := profile.ConvertOptions()
	if *indexFlag {
		opts.IndexMapping = true
	}
	if *attrsFlag {
		opts.EdgeAttributes = true
	}

	in, out := flagSet.Arg(0), flagSet.Arg(1)
	stats, err := convert.Files(ctx, in, out, opts)
	if err != nil {
		report(stderr, err)
		return exitError
	}

	fmt.Fprintf(stdout, "%s: %d nodes, %d edges\n", out, stats.Nodes, stats.Edges)

	return exitOK
}

// report prints err followed by its cause chain, one description per line.
func report(w io.Writer, err error) {
	fmt.Fprintln(w, "graphml2mm: error:", err)

	type describer interface{ Description() string }
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		if d, ok := cause.(describer); ok {
			fmt.Fprintln(w, "  caused by:", d.Description())
		}
	}
}
