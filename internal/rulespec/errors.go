// SPDX-License-Identifier: AGPL-3.0-or-later

package rulespec

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is the umbrella for both error kinds below. Callers that
// only care whether a spec was bad, not why, can errors.Is against it.
// File-access failures from Load are never wrapped into it.
var ErrInvalidSpec = errors.New("invalid rule spec")

// ParseError reports text that cannot be decomposed into a value tree. Line
// holds the offending line's literal text when one is attributable.
type ParseError struct {
	Line string
	msg  string
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return e.msg
	}
	return fmt.Sprintf("%s: %q", e.msg, e.Line)
}

// Unwrap enables errors.Is(err, ErrInvalidSpec).
func (e *ParseError) Unwrap() error { return ErrInvalidSpec }

func parseErr(msg, line string) *ParseError {
	return &ParseError{msg: msg, Line: line}
}

// ValidationError reports a well-formed value tree that fails a semantic
// rule. Field names the offending field (or the comma-joined missing set);
// Index is the offending validations entry, or -1 when not applicable.
type ValidationError struct {
	Field string
	Index int
	msg   string
}

func (e *ValidationError) Error() string { return e.msg }

// Unwrap enables errors.Is(err, ErrInvalidSpec).
func (e *ValidationError) Unwrap() error { return ErrInvalidSpec }

func fieldErr(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Index: -1, msg: fmt.Sprintf(format, args...)}
}

func entryErr(index int) *ValidationError {
	return &ValidationError{
		Field: "validations",
		Index: index,
		msg:   fmt.Sprintf("validation entry at index %d must be a mapping", index),
	}
}
