// SPDX-License-Identifier: MIT
// Package matrixmarket: sentinel errors.
//
// Every message is prefixed with "matrixmarket: ...". Callers match with
// errors.Is; context is attached with fmt.Errorf("...: %w", ErrX).
// Errors from the sink itself are NOT wrapped: they surface unmodified.

package matrixmarket

import "errors"

var (
	// ErrHeaderOverflow indicates that "<rows> <cols> <entries>" is longer
	// than the reserved placeholder. The placeholder is left untouched.
	ErrHeaderOverflow = errors.New("matrixmarket: dimension line exceeds reserved width")

	// ErrUnknownVertex indicates that an edge endpoint has no matching Node
	// event while index mapping is enabled.
	ErrUnknownVertex = errors.New("matrixmarket: unknown vertex id")
)
