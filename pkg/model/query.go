package model

import (
	"context"
	"sync"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
)

// QuerySpec describes one request/response pair: the request producer, the
// destination it is sent to, and the criteria its response must satisfy.
type QuerySpec struct {
	Destination Destination
	KeyIndex    uint16
	Request     Producer
	Response    Criteria
}

// Query retransmits a request until its response arrives or the timeout
// elapses. The expectation is armed before the first transmission, so a
// response racing the request cannot be missed, and a message that arrived
// before the query started can never satisfy it.
//
// Exactly one of {match, ErrTimeout, send error} terminates the call; on
// every path the retransmission schedule is stopped before return.
func (m *Model) Query(ctx context.Context, kctx KeyContext, spec QuerySpec,
	interval, timeout time.Duration) (*access.Message, error) {

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	exp := m.Expect(kctx, spec.Response)
	defer exp.Cancel()

	job := m.repeat(kctx, spec.Destination, spec.KeyIndex, spec.Request,
		interval, AbortOnSendError)
	defer job.Stop()

	select {
	case <-exp.done:
		if exp.err != nil {
			return nil, exp.err
		}
		return exp.in.Msg, nil
	case <-job.Done():
		// Schedule aborted on a send failure.
		return nil, job.Err()
	case <-ctx.Done():
		exp.Cancel()
		// A match racing the deadline still wins.
		if exp.err == nil {
			return exp.in.Msg, nil
		}
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

// Result is one bulk-query outcome: the matched message, or the error that
// terminated the key (ErrTimeout, a send error, or a context error).
type Result struct {
	Msg *access.Message
	Err error
}

// BulkQuery runs one query per key concurrently under a single shared
// deadline. Each key's retransmission runs independently and stops as soon
// as that key's response matches; the remaining keys keep retransmitting.
//
// The returned map always contains every key: a matched message, a send
// error for keys whose transmission failed, or ErrTimeout for keys still
// pending when the deadline passed. No combined error is ever returned;
// the map itself carries partial failure.
func BulkQuery[K comparable](ctx context.Context, m *Model, kctx KeyContext,
	specs map[K]QuerySpec, interval, timeout time.Duration) map[K]Result {

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make(map[K]Result, len(specs))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for key, spec := range specs {
		wg.Add(1)
		go func(key K, spec QuerySpec) {
			defer wg.Done()
			// No per-key timeout: only the shared deadline applies.
			msg, err := m.Query(ctx, kctx, spec, interval, timeout)
			mu.Lock()
			results[key] = Result{Msg: msg, Err: err}
			mu.Unlock()
		}(key, spec)
	}
	wg.Wait()

	return results
}
