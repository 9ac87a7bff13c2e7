// SPDX-License-Identifier: MIT

// Package graphml reads the node/edge subset of GraphML into an ordered,
// fully validated sequence of graph events.
//
// The package provides:
//
//   - Event, with exactly two shapes: Node and Edge.
//   - NewNode / NewEdge, the only way to obtain a valid event.
//   - A layered error model: FieldMissingError (NodeError, EdgeError) for
//     construction failures, wrapped by ReaderError (XMLError,
//     GraphEventError) at the reader boundary.
//   - Read, a streaming, fail-fast reader over encoding/xml tokens.
//
// Only the local names of elements and attributes are matched; namespaces
// are not distinguished. Elements other than node and edge are ignored, so a
// document without any of them yields an empty sequence.
//
// Read never returns partial results: the first syntax or validation error
// aborts the scan and discards everything collected so far.
package graphml
