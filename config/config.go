// SPDX-License-Identifier: MIT

// Package config loads a conversion profile from an HCL file.
//
// A profile has three optional blocks:
//
//	writer {
//	  header_width  = 62
//	  index_mapping = false
//	}
//	reader {
//	  edge_attributes = true
//	}
//	log {
//	  level  = "debug" # debug | info | warn | error
//	  format = "text"  # text | json
//	}
//
// Absent blocks and attributes keep the library defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/graphml2mm/convert"
)

// ErrInvalidProfile indicates a value outside its allowed set.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Profile is the decoded form of a profile file.
type Profile struct {
	Writer *Writer `hcl:"writer,block"`
	Reader *Reader `hcl:"reader,block"`
	Log    *Log    `hcl:"log,block"`
}

// Writer maps onto the matrixmarket options. A zero HeaderWidth keeps the
// default reservation.
type Writer struct {
	HeaderWidth  int  `hcl:"header_width,optional"`
	IndexMapping bool `hcl:"index_mapping,optional"`
}

// Reader maps onto the graphml options.
type Reader struct {
	EdgeAttributes bool `hcl:"edge_attributes,optional"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{
		Writer: &Writer{},
		Reader: &Reader{},
		Log:    &Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses the profile at path.
func Load(path string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// Parse decodes an HCL profile. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var p Profile
	if diags = gohcl.DecodeBody(file.Body, nil, &p); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}
	p.fillDefaults()

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &p, nil
}

func (p *Profile) fillDefaults() {
	def := Default()
	if p.Writer == nil {
		p.Writer = def.Writer
	}
	if p.Reader == nil {
		p.Reader = def.Reader
	}
	if p.Log == nil {
		p.Log = def.Log
	}
	if p.Log.Level == "" {
		p.Log.Level = def.Log.Level
	}
	if p.Log.Format == "" {
		p.Log.Format = def.Log.Format
	}
	p.Log.Level = strings.ToLower(p.Log.Level)
	p.Log.Format = strings.ToLower(p.Log.Format)
}

func (p *Profile) validate() error {
	if p.Writer.HeaderWidth < 0 {
		return fmt.Errorf("writer.header_width %d must not be negative: %w", p.Writer.HeaderWidth, ErrInvalidProfile)
	}
	if _, ok := levels[p.Log.Level]; !ok {
		return fmt.Errorf("log.level %q: %w", p.Log.Level, ErrInvalidProfile)
	}
	if p.Log.Format != "text" && p.Log.Format != "json" {
		return fmt.Errorf("log.format %q: %w", p.Log.Format, ErrInvalidProfile)
	}

	return nil
}

// ConvertOptions returns the pipeline options described by the profile.
func (p *Profile) ConvertOptions() convert.Options {
	return convert.Options{
		HeaderWidth:    p.Writer.HeaderWidth,
		IndexMapping:   p.Writer.IndexMapping,
		EdgeAttributes: p.Reader.EdgeAttributes,
	}
}

// Logger builds the logger described by the log block, writing to w.
func (p *Profile) Logger(w io.Writer) (*slog.Logger, error) {
	level, ok := levels[strings.ToLower(p.Log.Level)]
	if !ok {
		return nil, fmt.Errorf("log.level %q: %w", p.Log.Level, ErrInvalidProfile)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(p.Log.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log.format %q: %w", p.Log.Format, ErrInvalidProfile)
	}
}
