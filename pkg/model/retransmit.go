package model

import (
	"context"
	"sync"
	"time"

	"github.com/pion/logging"
)

// RetryPolicy decides whether a retransmission schedule survives a failed
// transmission attempt. Transient transport errors are expected; the
// default policy never aborts.
type RetryPolicy interface {
	// OnSendError is called after each failed attempt (1-based).
	// Returning false aborts the schedule.
	OnSendError(attempt int, err error) bool
}

type neverAbort struct{}

func (neverAbort) OnSendError(int, error) bool { return true }

type abortOnSendError struct{}

func (abortOnSendError) OnSendError(int, error) bool { return false }

// Retransmission policies.
var (
	// NeverAbort tolerates every send failure. Default for Repeat.
	NeverAbort RetryPolicy = neverAbort{}

	// AbortOnSendError stops the schedule on the first send failure.
	// Query and BulkQuery use it so a dead transport surfaces as an
	// error instead of silent retries.
	AbortOnSendError RetryPolicy = abortOnSendError{}
)

// Retransmitter periodically resends a message until stopped. The first
// transmission happens immediately on start, then once per interval, each
// with a freshly produced message.
type Retransmitter struct {
	model    *Model
	kctx     KeyContext
	dst      Destination
	keyIndex uint16
	producer Producer
	interval time.Duration
	policy   RetryPolicy
	log      logging.LeveledLogger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}

	mu      sync.Mutex
	lastErr error
}

func (r *Retransmitter) start() {
	go r.loop()
}

func (r *Retransmitter) loop() {
	defer close(r.doneCh)

	attempt := 0
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		attempt++
		if err := r.send(); err != nil {
			if r.log != nil {
				r.log.Warnf("send attempt %d failed: %v", attempt, err)
			}
			r.setErr(&SendError{Attempt: attempt, Err: err})
			if !r.policy.OnSendError(attempt, err) {
				return
			}
		}

		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (r *Retransmitter) send() error {
	op, fields := r.producer.Next()
	select {
	case <-r.stopCh:
		return nil
	default:
	}
	return r.model.Send(context.Background(), r.kctx, r.dst, r.keyIndex, op, fields)
}

func (r *Retransmitter) setErr(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}

// Stop halts the schedule. Idempotent; after Stop returns no further send
// is attempted.
func (r *Retransmitter) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	<-r.doneCh
}

// Done is closed when the schedule has ended, either by Stop or because
// the retry policy aborted.
func (r *Retransmitter) Done() <-chan struct{} { return r.doneCh }

// Err returns the most recent send failure, nil if every attempt so far
// succeeded.
func (r *Retransmitter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
