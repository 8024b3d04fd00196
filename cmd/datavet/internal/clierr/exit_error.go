package clierr

import (
	"errors"
	"fmt"

	"github.com/datavet/datavet/internal/rulespec"
)

// Exit codes of the datavet CLI. Parse and validation failures get distinct
// codes so scripts can tell a malformed file from a semantically bad one.
const (
	CodeGeneric    = 1
	CodeParse      = 2
	CodeValidation = 3
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	// Keep this stable and user-facing; don't include code here.
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// FromSpecError maps a rule spec failure onto the exit-code contract. Errors
// outside the rule spec taxonomy (e.g. file I/O) pass through unchanged and
// default to CodeGeneric at exit.
func FromSpecError(err error) error {
	if err == nil {
		return nil
	}
	var parseErr *rulespec.ParseError
	if errors.As(err, &parseErr) {
		return Wrap(CodeParse, "parse error", err)
	}
	var validationErr *rulespec.ValidationError
	if errors.As(err, &validationErr) {
		return Wrap(CodeValidation, "validation error", err)
	}
	return err
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
// This keeps main() dumb and avoids duplicating errors.As logic everywhere.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return CodeGeneric
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return CodeGeneric
	}
	return code
}
