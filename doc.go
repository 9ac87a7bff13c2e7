// SPDX-License-Identifier: MIT

// Package graphml2mm converts graphs written in GraphML into MatrixMarket
// coordinate files describing their adjacency structure.
//
// The module is organized as:
//
//	graphml/      - node/edge events, field validation, streaming fail-fast reader
//	matrixmarket/ - coordinate writer with a backpatched dimension line
//	convert/      - read-then-write pipeline and the caller-facing error
//	config/       - HCL conversion profiles
//	ctxlog/       - slog logger carried in context.Context
//	cmd/graphml2mm - command-line front end
//
// Quick example:
//
//	<graphml><graph id="G">
//	  <node id="1"/><node id="2"/>
//	  <edge id="a" source="1" target="2"/>
//	</graph></graphml>
//
// becomes
//
//	%%MatrixMarket matrix coordinate real general
//	2 2 1
//	1 2 1.0
//
// Edges carry the unit weight 1.0. Node identifiers are written as-is unless
// index mapping is enabled, in which case each node gets its 1-based
// declaration position.
package graphml2mm
