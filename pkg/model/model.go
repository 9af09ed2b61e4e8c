package model

import (
	"context"
	"fmt"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
	"github.com/pion/logging"
)

// Config configures a Model.
type Config struct {
	// Sender transmits encoded messages. Required for Send, Repeat,
	// Query and BulkQuery; a Model used only for dispatch may leave it
	// nil.
	Sender Sender

	// Registry resolves opcodes to schemas on receive and encode.
	// Defaults to the package-level access registry.
	Registry *access.Registry

	// ErrorSink receives decode failures and handler errors. They are
	// local to one message and never stop delivery of later messages.
	// If nil, errors are logged.
	ErrorSink func(err error)

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Model ties the access codec to a transport: it decodes inbound payloads,
// routes them to registered handlers and pending expectations, and encodes
// and retransmits outbound requests. Application-key and device-key
// traffic keep fully independent dispatch and expectation state.
type Model struct {
	sender   Sender
	registry *access.Registry
	sink     func(err error)
	log      logging.LeveledLogger

	tables   [2]*dispatchTable
	matchers [2]*matcher
}

// New creates a Model.
func New(config Config) *Model {
	m := &Model{
		sender:   config.Sender,
		registry: config.Registry,
		sink:     config.ErrorSink,
	}
	if config.LoggerFactory != nil {
		m.log = config.LoggerFactory.NewLogger("model")
	}
	if m.sink == nil {
		m.sink = func(err error) {
			if m.log != nil {
				m.log.Warnf("%v", err)
			}
		}
	}
	for i := range m.tables {
		m.tables[i] = newDispatchTable()
		m.matchers[i] = newMatcher()
	}
	return m
}

func (m *Model) table(kctx KeyContext) *dispatchTable { return m.tables[int(kctx)&1] }

func (m *Model) matcher(kctx KeyContext) *matcher { return m.matchers[int(kctx)&1] }

// Register adds a handler for an opcode in one key context. Handlers fire
// in registration order. The returned id removes exactly this handler.
func (m *Model) Register(kctx KeyContext, op access.Opcode, h Handler) HandlerID {
	return m.table(kctx).add(op, h)
}

// Unregister removes a previously registered handler. Reports whether the
// handler was still registered.
func (m *Model) Unregister(kctx KeyContext, op access.Opcode, id HandlerID) bool {
	return m.table(kctx).remove(op, id)
}

// Expect arms an expectation for the first inbound message in kctx
// matching crit. Arm before sending the request the response answers, or
// the response may race past.
func (m *Model) Expect(kctx KeyContext, crit Criteria) *Expectation {
	return m.matcher(kctx).expect(crit)
}

// Receive decodes one inbound payload and delivers it. Handlers run first,
// in registration order, each failure isolated and reported to the error
// sink; the message is then offered to pending expectations. Decode errors
// go to the sink and are otherwise dropped.
//
// Callers must invoke Receive in transport arrival order; the Model
// performs no reordering.
func (m *Model) Receive(kctx KeyContext, source uint16, dst Destination, keyIndex uint16, payload []byte) {
	msg, err := m.decode(payload)
	if err != nil {
		m.sink(fmt.Errorf("model: dropping message from %04x: %w", source, err))
		return
	}

	in := Inbound{
		Context:     kctx,
		Source:      source,
		Destination: dst,
		KeyIndex:    keyIndex,
		Msg:         msg,
	}

	if m.log != nil {
		m.log.Debugf("recv [%s] %s from %04x", kctx, msg.Name, source)
	}

	for _, entry := range m.table(kctx).snapshot(msg.Opcode) {
		if err := entry.fn(in); err != nil {
			m.sink(fmt.Errorf("model: handler for %s: %w", msg.Opcode, err))
		}
	}

	m.matcher(kctx).offer(in)
}

func (m *Model) decode(payload []byte) (*access.Message, error) {
	if m.registry != nil {
		return m.registry.Decode(payload)
	}
	return access.Decode(payload)
}

func (m *Model) encode(op access.Opcode, fields access.Values) ([]byte, error) {
	if m.registry != nil {
		return m.registry.Encode(op, fields)
	}
	return access.Encode(op, fields)
}

// Send encodes and transmits one message. Encode failures surface
// synchronously; transport failures are returned as a SendError.
func (m *Model) Send(ctx context.Context, kctx KeyContext, dst Destination, keyIndex uint16,
	op access.Opcode, fields access.Values) error {

	if m.sender == nil {
		return ErrNoSender
	}
	payload, err := m.encode(op, fields)
	if err != nil {
		return err
	}
	if m.log != nil {
		m.log.Debugf("send [%s] %s to %s", kctx, op, dst)
	}
	return m.sender.Send(ctx, Outbound{
		Context:     kctx,
		Destination: dst,
		KeyIndex:    keyIndex,
		Payload:     payload,
	})
}

// Repeat starts periodic retransmission: an immediate first send, then one
// per interval, each with a freshly produced message, until Stop. Send
// failures are tolerated per the default retry policy.
func (m *Model) Repeat(kctx KeyContext, dst Destination, keyIndex uint16,
	p Producer, interval time.Duration) *Retransmitter {
	return m.repeat(kctx, dst, keyIndex, p, interval, NeverAbort)
}

func (m *Model) repeat(kctx KeyContext, dst Destination, keyIndex uint16,
	p Producer, interval time.Duration, policy RetryPolicy) *Retransmitter {

	r := &Retransmitter{
		model:    m,
		kctx:     kctx,
		dst:      dst,
		keyIndex: keyIndex,
		producer: p,
		interval: interval,
		policy:   policy,
		log:      m.log,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	r.start()
	return r
}
