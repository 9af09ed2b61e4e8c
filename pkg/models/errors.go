package models

import (
	"errors"
	"fmt"
)

// ErrOperationFailed is returned when a peer answers an acknowledged
// operation with a non-success status code.
var ErrOperationFailed = errors.New("models: operation failed")

// StatusError reports the status code a peer returned for a failed
// operation.
type StatusError struct {
	Op   string
	Code uint64
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("models: %s failed with status %#02x", e.Op, e.Code)
}

// Unwrap reports ErrOperationFailed so errors.Is works.
func (e *StatusError) Unwrap() error { return ErrOperationFailed }
