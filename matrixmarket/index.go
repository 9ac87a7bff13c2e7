// SPDX-License-Identifier: MIT

package matrixmarket

import (
	"fmt"

	"github.com/katalvlaran/graphml2mm/graphml"
)

// Index maps node identifiers to 1-based matrix coordinates in the order the
// nodes were declared. A repeated node id keeps its first coordinate.
type Index struct {
	pos   map[string]int
	order []string
}

// NewIndex builds an Index from the Node events and checks that every Edge
// endpoint is known.
//
// Errors:
//   - ErrUnknownVertex (wrapped with the edge and endpoint) for an edge that
//     references an undeclared node.
//
// Complexity:
//   - Time O(N+E), Space O(N).
func NewIndex(events []graphml.Event) (*Index, error) {
	idx := &Index{pos: make(map[string]int)}
	for _, ev := range events {
		if n, ok := ev.(graphml.Node); ok {
			if _, seen := idx.pos[n.ID]; !seen {
				idx.order = append(idx.order, n.ID)
				idx.pos[n.ID] = len(idx.order)
			}
		}
	}

	for _, ev := range events {
		e, ok := ev.(graphml.Edge)
		if !ok {
			continue
		}
		for _, end := range [2]string{e.Source, e.Target} {
			if _, found := idx.pos[end]; !found {
				return nil, fmt.Errorf("edge %q endpoint %q: %w", e.ID, end, ErrUnknownVertex)
			}
		}
	}

	return idx, nil
}

// Lookup returns the 1-based coordinate of id.
func (x *Index) Lookup(id string) (int, bool) {
	p, ok := x.pos[id]

	return p, ok
}

// Len is the number of distinct node ids.
func (x *Index) Len() int { return len(x.order) }
