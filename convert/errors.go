// SPDX-License-Identifier: MIT

package convert

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidOptions indicates a nonsensical Options value (e.g. a negative
// header width).
var ErrInvalidOptions = errors.New("convert: invalid options")

// Kind classifies an *Error.
type Kind uint8

const (
	// KindRead: the input is malformed or fails validation
	// (the cause is a graphml.ReaderError).
	KindRead Kind = iota + 1

	// KindWrite: the writer refused the events (header overflow, unknown
	// vertex under index mapping).
	KindWrite

	// KindIO: reading the input or writing the output failed at the byte
	// level, or a file could not be opened/created/closed.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "invalid input"
	case KindWrite:
		return "cannot write matrix"
	case KindIO:
		return "i/o failure"
	default:
		return "unknown failure"
	}
}

// Error is the caller-facing layer of the error chain. It names the failed
// operation and classifies the cause.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Description()
	}

	return e.Op + ": " + e.Err.Error()
}

// Description is "<op>: <kind>", without the cause.
func (e *Error) Description() string { return e.Op + ": " + e.Kind.String() }

// Unwrap returns the cause.
func (e *Error) Unwrap() error { return e.Err }

// Cause is Unwrap under the github.com/pkg/errors causer contract.
func (e *Error) Cause() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return 0
}

// ioError wraps a byte-level failure, recording the stack at the boundary.
func ioError(op string, err error) error {
	return &Error{Op: op, Kind: KindIO, Err: pkgerrors.WithStack(err)}
}
