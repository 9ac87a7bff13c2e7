// SPDX-License-Identifier: MIT

package graphml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Recognized element and attribute local names.
const (
	elemNode   = "node"
	elemEdge   = "edge"
	attrID     = "id"
	attrSource = "source"
	attrTarget = "target"
)

// Read consumes r as XML and returns the node and edge events in document
// order.
//
// Behavior highlights:
//   - Start elements named node/edge (local name) become events; everything
//     else is ignored.
//   - Attributes match on local name, case-sensitive; a duplicated attribute
//     resolves to its last occurrence.
//   - Fail-fast: the first error aborts the scan and the collected events
//     are discarded. A nil slice is returned with every error.
//   - A well-formed document without node/edge elements yields an empty,
//     non-nil slice.
//   - A leading byte-order mark is consumed before decoding.
//
// Errors:
//   - *XMLError (ErrSyntax) for malformed XML, carrying the parser message.
//   - *GraphEventError (ErrValidation) wrapping *NodeError or *EdgeError.
//   - Any error returned by r itself, unmodified.
//
// Complexity:
//   - Time O(size of input), Space O(events).
func Read(r io.Reader, opts ...Option) ([]Event, error) {
	o := gatherOptions(opts)

	src := &source{r: r}
	dec := xml.NewDecoder(transform.NewReader(src, unicode.BOMOverride(transform.Nop)))
	dec.CharsetReader = charset.NewReaderLabel

	s := &scanner{dec: dec, src: src, opts: o}
	events, err := s.fold(make([]Event, 0))
	if err != nil {
		o.logger.Debug("graphml: read aborted", "error", err)
		return nil, err
	}
	o.logger.Debug("graphml: read complete", "events", len(events))

	return events, nil
}

// source remembers the last failure of the underlying reader so that I/O
// errors can be told apart from decoder errors.
type source struct {
	r   io.Reader
	err error
}

func (s *source) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}

	return n, err
}

// scanner holds the token-level state of one Read call.
type scanner struct {
	dec      *xml.Decoder
	src      *source
	opts     options
	depth    int
	rootSeen bool
}

// fold drives step over every token and stops at the first error.
func (s *scanner) fold(acc []Event) ([]Event, error) {
	for {
		tok, err := s.next()
		if err == io.EOF {
			return acc, s.finish()
		}
		if err != nil {
			return nil, err
		}

		ev, err := s.step(tok)
		if err != nil {
			return nil, err
		}
		if ev != nil {
			s.opts.logger.Debug("graphml: event", "event", ev.String())
			acc = append(acc, ev)
		}
	}
}

func (s *scanner) next() (xml.Token, error) {
	tok, err := s.dec.Token()
	if err == nil || err == io.EOF {
		return tok, err
	}
	if s.src.err != nil && errors.Is(err, s.src.err) {
		return nil, err
	}

	return nil, &XMLError{Msg: err.Error()}
}

// step maps one token to at most one event.
func (s *scanner) step(tok xml.Token) (Event, error) {
	switch t := tok.(type) {
	case xml.StartElement:
		if s.depth == 0 && s.rootSeen {
			return nil, s.syntaxError("unexpected element <" + t.Name.Local + "> outside the root element")
		}
		s.depth++
		s.rootSeen = true

		switch t.Name.Local {
		case elemNode:
			return s.node(t.Attr)
		case elemEdge:
			return s.edge(t.Attr)
		}
	case xml.EndElement:
		s.depth--
	case xml.CharData:
		if s.depth == 0 && len(bytes.TrimSpace(t)) > 0 {
			return nil, s.syntaxError("unexpected characters outside the root element")
		}
	}

	return nil, nil
}

func (s *scanner) node(attrs []xml.Attr) (Event, error) {
	n, err := NewNode(attrValue(attrs, attrID))
	if err != nil {
		return nil, validationError(err)
	}

	return n, nil
}

func (s *scanner) edge(attrs []xml.Attr) (Event, error) {
	var extra map[string]string
	if s.opts.edgeAttrs {
		extra = extraAttrs(attrs)
	}

	e, err := NewEdge(
		attrValue(attrs, attrID),
		attrValue(attrs, attrSource),
		attrValue(attrs, attrTarget),
		extra,
	)
	if err != nil {
		return nil, validationError(err)
	}

	return e, nil
}

// finish rejects input that never opened a root element.
func (s *scanner) finish() error {
	if !s.rootSeen {
		return s.syntaxError("no root element")
	}

	return nil
}

func (s *scanner) syntaxError(msg string) error {
	line, _ := s.dec.InputPos()

	return &XMLError{Msg: (&xml.SyntaxError{Msg: msg, Line: line}).Error()}
}

func validationError(err error) error {
	var fe FieldMissingError
	if errors.As(err, &fe) {
		return &GraphEventError{Err: fe}
	}

	return err
}

// attrValue returns the value of the last attribute whose local name is
// local, or nil.
func attrValue(attrs []xml.Attr, local string) *string {
	var v *string
	for i := range attrs {
		if isNamespaceDecl(attrs[i].Name) {
			continue
		}
		if attrs[i].Name.Local == local {
			v = &attrs[i].Value
		}
	}

	return v
}

func extraAttrs(attrs []xml.Attr) map[string]string {
	out := make(map[string]string)
	for _, a := range attrs {
		if isNamespaceDecl(a.Name) {
			continue
		}
		switch a.Name.Local {
		case attrID, attrSource, attrTarget:
			continue
		}
		out[a.Name.Local] = a.Value
	}

	return out
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
