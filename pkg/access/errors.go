package access

import (
	"errors"
	"fmt"
)

// Errors returned by the access package.
var (
	// ErrMalformedOpcode is returned when opcode bytes are truncated or use
	// a reserved pattern.
	ErrMalformedOpcode = errors.New("access: malformed opcode")

	// ErrUnknownOpcode is returned when no schema is registered for an opcode.
	ErrUnknownOpcode = errors.New("access: unknown opcode")

	// ErrTruncated is returned when a payload ends before the schema does.
	ErrTruncated = errors.New("access: truncated message")

	// ErrTrailingBytes is returned when a payload has bytes left after the
	// schema has been fully consumed.
	ErrTrailingBytes = errors.New("access: trailing bytes after message")

	// ErrInvalidField is returned when a field value violates its
	// descriptor's domain, on encode or decode.
	ErrInvalidField = errors.New("access: invalid field")
)

// FieldError reports the offending field for an ErrInvalidField.
type FieldError struct {
	// Field is the field name, dot-separated for nested fields.
	Field string

	// Reason describes the domain violation.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("access: invalid field %q: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidField so errors.Is matches.
func (e *FieldError) Unwrap() error { return ErrInvalidField }

func fieldErrorf(field, format string, args ...interface{}) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// UnknownOpcodeError reports the opcode that had no registered schema.
type UnknownOpcodeError struct {
	Opcode Opcode
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("access: unknown opcode %s", e.Opcode)
}

// Unwrap returns ErrUnknownOpcode so errors.Is matches.
func (e *UnknownOpcodeError) Unwrap() error { return ErrUnknownOpcode }
