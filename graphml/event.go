// SPDX-License-Identifier: MIT

package graphml

import (
	"sort"
	"strings"
)

// Event is a single graph item in document order. It is a closed variant:
// only Node and Edge implement it.
type Event interface {
	String() string
	isEvent()
}

// Node is a graph vertex. ID is required; an explicit id="" counts as
// present.
type Node struct {
	ID string
}

// Edge connects Source to Target. Attrs is never nil for an Edge obtained
// from NewEdge; a literal Edge skips validation and may leave it nil, which
// String and the matrixmarket writers treat as empty.
type Edge struct {
	ID     string
	Source string
	Target string
	Attrs  map[string]string
}

func (Node) isEvent() {}
func (Edge) isEvent() {}

// String renders the node as Node(<id>).
func (n Node) String() string { return "Node(" + n.ID + ")" }

// String renders the edge as Edge(<id>, <source>, <target>, {k=v, ...})
// with attribute keys in ascending order.
func (e Edge) String() string {
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("Edge(")
	sb.WriteString(e.ID)
	sb.WriteString(", ")
	sb.WriteString(e.Source)
	sb.WriteString(", ")
	sb.WriteString(e.Target)
	sb.WriteString(", {")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(e.Attrs[k])
	}
	sb.WriteString("})")

	return sb.String()
}

// NewNode validates id and returns a Node.
//
// Errors:
//   - *NodeError (matches ErrMissingField) when id is nil.
func NewNode(id *string) (Node, error) {
	if id == nil {
		return Node{}, &NodeError{ID: nil}
	}

	return Node{ID: *id}, nil
}

// NewEdge validates id, source and target and returns an Edge. A nil attrs
// becomes an empty map; a non-nil attrs is copied so the event stays
// immutable. Missing attrs is never an error.
//
// Errors:
//   - *EdgeError (matches ErrMissingField) when any of id/source/target is
//     nil. The error echoes back the fields that were present.
func NewEdge(id, source, target *string, attrs map[string]string) (Edge, error) {
	if id == nil || source == nil || target == nil {
		return Edge{}, &EdgeError{
			ID:     clonePtr(id),
			Source: clonePtr(source),
			Target: clonePtr(target),
		}
	}

	cp := make(map[string]string, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}

	return Edge{ID: *id, Source: *source, Target: *target, Attrs: cp}, nil
}

// Ptr returns a pointer to s. It is a convenience for building optional
// constructor arguments.
func Ptr(s string) *string { return &s }

func clonePtr(p *string) *string {
	if p == nil {
		return nil
	}

	return Ptr(*p)
}
