// SPDX-License-Identifier: MIT

// Package matrixmarket writes graph events as a MatrixMarket
// "coordinate real general" file.
//
// The package provides:
//
//   - Write, a single forward pass over the events into an io.WriteSeeker.
//     The dimension line is reserved as a fixed-width run of spaces and
//     backpatched once the node and edge counts are known.
//   - WriteBuffered, for sinks that cannot seek: edge lines are buffered in
//     memory and the exact dimension line is written first.
//   - Index, an optional identifier → 1-based coordinate mapping.
//
// Output layout:
//
//	%%MatrixMarket matrix coordinate real general
//	<rows> <cols> <entries>
//	<source> <target> 1.0
//
// rows and cols both equal the number of Node events; entries equals the
// number of Edge events. Every edge carries the unit weight 1.0.
//
// By default edge endpoints are written as the raw identifier strings from
// the input, which is only valid MatrixMarket when the identifiers already
// are 1-based indices. WithIndexMapping rewrites them through an Index.
package matrixmarket
