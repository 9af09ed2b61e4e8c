package model

import (
	"context"
	"errors"
	"sync"

	"github.com/meshkit/btmesh/pkg/access"
)

// Criteria selects an inbound message. Opcode equality is mandatory; the
// remaining constraints apply only when set. No wildcarding beyond that:
// Filter is an exact closed-form test over the already-decoded fields.
type Criteria struct {
	// Opcode the message must carry.
	Opcode access.Opcode

	// Source, if non-nil, is the required originating address.
	Source *uint16

	// Destination, if non-nil, is the required destination.
	Destination *Destination

	// KeyIndex, if non-nil, is the required application or network key
	// index the message arrived under.
	KeyIndex *uint16

	// Filter, if non-nil, is evaluated against the decoded message after
	// the address constraints pass.
	Filter func(msg *access.Message) bool
}

func (c Criteria) matches(in Inbound) bool {
	if in.Msg.Opcode != c.Opcode {
		return false
	}
	if c.Source != nil && in.Source != *c.Source {
		return false
	}
	if c.Destination != nil {
		want := *c.Destination
		got := in.Destination
		if want.IsVirtual() != got.IsVirtual() {
			return false
		}
		if want.IsVirtual() {
			if *want.Label != *got.Label {
				return false
			}
		} else if want.Address != got.Address {
			return false
		}
	}
	if c.KeyIndex != nil && in.KeyIndex != *c.KeyIndex {
		return false
	}
	if c.Filter != nil && !c.Filter(in.Msg) {
		return false
	}
	return true
}

// Expectation is a pending, single-resolution predicate over inbound
// messages. It is resolved at most once, by the first matching message or
// by Cancel, and is removed from the pending set on resolution.
type Expectation struct {
	owner *matcher
	crit  Criteria

	once sync.Once
	done chan struct{}
	in   Inbound
	err  error
}

// resolve completes the expectation with a matched message. Returns false
// if the expectation was already resolved.
func (e *Expectation) resolve(in Inbound) bool {
	resolved := false
	e.once.Do(func() {
		e.in = in
		close(e.done)
		resolved = true
	})
	return resolved
}

// Cancel resolves the expectation with ErrCanceled and removes it from the
// pending set. Safe to call multiple times and after resolution.
func (e *Expectation) Cancel() {
	e.once.Do(func() {
		e.err = ErrCanceled
		close(e.done)
	})
	e.owner.remove(e)
}

// Wait blocks until the expectation resolves or ctx is done. Context
// deadline expiry is reported as ErrTimeout; plain cancellation as the
// context error. A message arriving after Wait returns is never delivered
// to this expectation.
func (e *Expectation) Wait(ctx context.Context) (*access.Message, error) {
	select {
	case <-e.done:
		if e.err != nil {
			return nil, e.err
		}
		return e.in.Msg, nil
	case <-ctx.Done():
		e.Cancel()
		// A message that won the resolution race is still a match.
		if e.err == nil {
			return e.in.Msg, nil
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

// matcher holds the pending expectations for one key context.
type matcher struct {
	mu      sync.Mutex
	pending []*Expectation
}

func newMatcher() *matcher {
	return &matcher{}
}

func (m *matcher) expect(crit Criteria) *Expectation {
	e := &Expectation{
		owner: m,
		crit:  crit,
		done:  make(chan struct{}),
	}

	m.mu.Lock()
	m.pending = append(m.pending, e)
	m.mu.Unlock()

	return e
}

func (m *matcher) remove(e *Expectation) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.pending {
		if p == e {
			m.pending = append(m.pending[:i:i], m.pending[i+1:]...)
			return
		}
	}
}

// offer matches one inbound message against the pending set, in arming
// order, and resolves the first expectation whose criteria match. The
// message is not offered to any further expectation, so concurrent waiters
// on the same predicate see exactly one resolution per message.
func (m *matcher) offer(in Inbound) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.pending {
		if !e.crit.matches(in) {
			continue
		}
		if !e.resolve(in) {
			continue
		}
		m.pending = append(m.pending[:i:i], m.pending[i+1:]...)
		return true
	}
	return false
}
