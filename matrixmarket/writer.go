// SPDX-License-Identifier: MIT

package matrixmarket

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/graphml2mm/graphml"
)

// Banner is the fixed first line of every file written by this package.
const Banner = "%%MatrixMarket matrix coordinate real general"

// unitWeight is the value of every entry; edges carry no weights.
const unitWeight = "1.0"

// Write emits events to w as a MatrixMarket coordinate file in a single
// forward pass plus one backpatch.
//
// Implementation:
//   - Stage 1: write Banner and record the offset of the dimension line.
//   - Stage 2: reserve the dimension line as HeaderWidth spaces + "\n".
//   - Stage 3: one line "<source> <target> 1.0" per Edge; count Nodes.
//   - Stage 4: seek back, overwrite the reservation with
//     "<nodes> <nodes> <edges>", then seek to the end of the stream.
//
// Behavior highlights:
//   - rows = cols = number of Node events, regardless of which nodes have
//     edges. Unused reservation bytes stay spaces.
//   - The dimension line is formatted before seeking; if it does not fit the
//     reservation, ErrHeaderOverflow is returned and no edge byte is touched.
//   - Events are trusted: no validation beyond the optional index mapping.
//
// Errors:
//   - ErrUnknownVertex (index mapping only), before anything is written.
//   - ErrHeaderOverflow when the reservation is too narrow.
//   - Any error from w, unmodified. Nothing is retried.
//
// Complexity:
//   - Time O(N+E), Space O(1) beyond the optional Index.
func Write(w io.WriteSeeker, events []graphml.Event, opts ...Option) error {
	o := gatherOptions(opts...)

	label, err := labeler(events, o)
	if err != nil {
		return err
	}

	if _, err = io.WriteString(w, Banner+"\n"); err != nil {
		return err
	}
	offset, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err = w.Write(placeholder(o.headerWidth)); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	c, err := writeEntries(bw, events, label)
	if err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}

	header := c.header()
	if len(header) > o.headerWidth {
		return fmt.Errorf("%q needs %d bytes, %d reserved: %w",
			header, len(header), o.headerWidth, ErrHeaderOverflow)
	}

	if _, err = w.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	if _, err = io.WriteString(w, header); err != nil {
		return err
	}
	if _, err = w.Seek(0, io.SeekEnd); err != nil {
		return err
	}

	o.logger.Debug("matrixmarket: dimension line patched",
		"offset", offset, "rows", c.nodes, "cols", c.nodes, "entries", c.entries)

	return nil
}

// WriteBuffered emits the same content as Write to a sink that cannot seek.
// Edge lines are buffered in memory first, so the dimension line is written
// exactly, without padding. HeaderWidth does not apply.
//
// Errors:
//   - ErrUnknownVertex (index mapping only), before anything is written.
//   - Any error from w, unmodified.
//
// Complexity:
//   - Time O(N+E), Space O(E) for the buffered lines.
func WriteBuffered(w io.Writer, events []graphml.Event, opts ...Option) error {
	o := gatherOptions(opts...)

	label, err := labeler(events, o)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	c, _ := writeEntries(&body, events, label) // bytes.Buffer writes never fail
	buffered := body.Len()

	bw := bufio.NewWriter(w)
	if _, err = io.WriteString(bw, Banner+"\n"+c.header()+"\n"); err != nil {
		return err
	}
	if _, err = body.WriteTo(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}

	o.logger.Debug("matrixmarket: buffered write complete",
		"rows", c.nodes, "cols", c.nodes, "entries", c.entries, "buffered_bytes", buffered)

	return nil
}

// counts tallies what the dimension line reports.
type counts struct {
	nodes   int
	entries int
}

func (c counts) header() string {
	return fmt.Sprintf("%d %d %d", c.nodes, c.nodes, c.entries)
}

// writeEntries writes one coordinate line per Edge and counts Nodes.
func writeEntries(w io.Writer, events []graphml.Event, label func(string) string) (counts, error) {
	var c counts
	for _, ev := range events {
		switch e := ev.(type) {
		case graphml.Edge:
			c.entries++
			if _, err := io.WriteString(w, label(e.Source)+" "+label(e.Target)+" "+unitWeight+"\n"); err != nil {
				return c, err
			}
		case graphml.Node:
			c.nodes++
		}
	}

	return c, nil
}

// labeler returns the identifier → coordinate text function for o.
func labeler(events []graphml.Event, o Options) (func(string) string, error) {
	if !o.indexMapping {
		return func(id string) string { return id }, nil
	}

	idx, err := NewIndex(events)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("matrixmarket: index mapping", "vertices", idx.Len())

	return func(id string) string {
		p, _ := idx.Lookup(id)

		return strconv.Itoa(p)
	}, nil
}

func placeholder(width int) []byte {
	b := bytes.Repeat([]byte{' '}, width+1)
	b[width] = '\n'

	return b
}
