package model

import (
	"errors"
	"fmt"
)

// Errors returned by the model package.
var (
	// ErrTimeout is returned when no matching message arrives before the
	// deadline. It is the normal terminal outcome of an unmet query.
	ErrTimeout = errors.New("model: timed out waiting for response")

	// ErrSend is returned when a transmission attempt fails terminally.
	ErrSend = errors.New("model: send failed")

	// ErrCanceled is returned when an expectation is canceled before a
	// matching message arrives.
	ErrCanceled = errors.New("model: expectation canceled")

	// ErrNoSender is returned when a send is attempted on a Model
	// configured without a Sender.
	ErrNoSender = errors.New("model: no sender configured")
)

// SendError wraps a transport failure for a single transmission attempt.
type SendError struct {
	Attempt int
	Err     error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("model: send attempt %d failed: %v", e.Attempt, e.Err)
}

// Unwrap reports ErrSend so errors.Is(err, ErrSend) holds, and exposes the
// underlying transport error via a second unwrap step.
func (e *SendError) Unwrap() []error {
	return []error{ErrSend, e.Err}
}
