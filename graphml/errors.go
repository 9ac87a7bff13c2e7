// SPDX-License-Identifier: MIT
// Package graphml: layered error model.
//
// Two layers are defined here:
//   - FieldMissingError: a required field was absent at event construction
//     (NodeError, EdgeError). Leaf errors, no cause.
//   - ReaderError: what Read returns. XMLError carries the parser message
//     and has no cause; GraphEventError wraps a FieldMissingError.
//
// Wrappers expose their cause through both Unwrap (errors.Is/As) and Cause
// (github.com/pkg/errors style). Leaves implement neither, so errors.Cause
// stops at the innermost error. Each type also matches a package sentinel via
// errors.Is, so callers may branch on the class without a type switch.

package graphml

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by NodeError and EdgeError.
	ErrMissingField = errors.New("graphml: missing required field")

	// ErrSyntax is matched by XMLError.
	ErrSyntax = errors.New("graphml: malformed xml")

	// ErrValidation is matched by GraphEventError.
	ErrValidation = errors.New("graphml: event validation failed")
)

// FieldMissingError reports which required fields were absent when an event
// was constructed. Implemented by *NodeError and *EdgeError only.
type FieldMissingError interface {
	error
	Description() string
	isFieldMissing()
}

// ReaderError is the error returned by Read for malformed or invalid input.
// Implemented by *XMLError and *GraphEventError only.
type ReaderError interface {
	error
	Description() string
	isReaderError()
}

// NodeError is returned by NewNode. ID echoes the supplied id and is nil in
// practice, since id is the only required field.
type NodeError struct {
	ID *string
}

func (*NodeError) isFieldMissing() {}

// Description returns "node: missing id field".
func (e *NodeError) Description() string { return "node: missing id field" }

func (e *NodeError) Error() string { return e.Description() }

// Is reports whether target is ErrMissingField.
func (e *NodeError) Is(target error) bool { return target == ErrMissingField }

// EdgeError is returned by NewEdge. Each field holds the supplied value, or
// nil when the field was absent.
type EdgeError struct {
	ID     *string
	Source *string
	Target *string
}

func (*EdgeError) isFieldMissing() {}

// Description renders every field's presence, e.g.
//
//	edge: missing field(s) [id: Some("da"), source: None, target: Some("A")]
func (e *EdgeError) Description() string {
	return fmt.Sprintf("edge: missing field(s) [id: %s, source: %s, target: %s]",
		optional(e.ID), optional(e.Source), optional(e.Target))
}

func (e *EdgeError) Error() string { return e.Description() }

// Is reports whether target is ErrMissingField.
func (e *EdgeError) Is(target error) bool { return target == ErrMissingField }

// Missing lists the absent field names in id, source, target order.
func (e *EdgeError) Missing() []string {
	var out []string
	if e.ID == nil {
		out = append(out, "id")
	}
	if e.Source == nil {
		out = append(out, "source")
	}
	if e.Target == nil {
		out = append(out, "target")
	}

	return out
}

// XMLError wraps a syntax or well-formedness failure. Msg is the parser's
// message verbatim.
type XMLError struct {
	Msg string
}

func (*XMLError) isReaderError() {}

// Description returns the parser message.
func (e *XMLError) Description() string { return e.Msg }

func (e *XMLError) Error() string { return e.Msg }

// Is reports whether target is ErrSyntax.
func (e *XMLError) Is(target error) bool { return target == ErrSyntax }

// GraphEventError wraps the FieldMissingError raised while building an event.
type GraphEventError struct {
	Err FieldMissingError
}

func (*GraphEventError) isReaderError() {}

// Description returns "encountered a validation error". The specifics live
// in the cause.
func (e *GraphEventError) Description() string { return "encountered a validation error" }

func (e *GraphEventError) Error() string {
	if e.Err == nil {
		return e.Description()
	}

	return e.Description() + ": " + e.Err.Error()
}

// Unwrap returns the wrapped FieldMissingError.
func (e *GraphEventError) Unwrap() error {
	if e.Err == nil {
		return nil
	}

	return e.Err
}

// Cause is Unwrap under the github.com/pkg/errors causer contract.
func (e *GraphEventError) Cause() error { return e.Unwrap() }

// Is reports whether target is ErrValidation.
func (e *GraphEventError) Is(target error) bool { return target == ErrValidation }

func optional(p *string) string {
	if p == nil {
		return "None"
	}

	return fmt.Sprintf("Some(%q)", *p)
}
