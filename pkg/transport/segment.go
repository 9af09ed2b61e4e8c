// Package transport provides an in-memory mesh segment for tests and
// examples: two endpoints exchanging access payloads over a virtual link
// with configurable loss and duplication. Real bearers (advertising, GATT)
// live outside this module; a Segment stands in for them wherever a
// model.Sender is needed.
package transport

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meshkit/btmesh/pkg/model"
	"github.com/pion/logging"
	"github.com/pion/transport/v3/test"
)

// Errors returned by the transport package.
var (
	// ErrClosed is returned when sending on a closed segment.
	ErrClosed = errors.New("transport: segment closed")

	// ErrShortFrame is returned when a received frame is too short to
	// carry its declared header.
	ErrShortFrame = errors.New("transport: short frame")

	// ErrNotAttached is returned when a frame arrives before a model is
	// attached to the endpoint.
	ErrNotAttached = errors.New("transport: endpoint not attached")
)

// LinkCondition configures link behavior simulation, applied per frame in
// both directions.
type LinkCondition struct {
	// DropRate is the probability of dropping a frame (0.0 - 1.0).
	DropRate float64

	// DuplicateRate is the probability of delivering a frame twice
	// (0.0 - 1.0).
	DuplicateRate float64
}

// SegmentConfig configures a Segment.
type SegmentConfig struct {
	// AddressA and AddressB are the unicast addresses of the two
	// endpoints. Defaults: 0x0001 and 0x0002.
	AddressA uint16
	AddressB uint16

	// Condition is the initial link condition. Zero value is a perfect
	// link.
	Condition LinkCondition

	// ProcessInterval is how often queued frames are delivered.
	// Default: 1ms.
	ProcessInterval time.Duration

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Segment is a two-node in-memory mesh segment. Frames written on one
// endpoint are delivered to the other in write order by a background
// delivery goroutine.
type Segment struct {
	bridge *test.Bridge
	a, b   *Endpoint
	log    logging.LeveledLogger

	mu        sync.RWMutex
	condition LinkCondition
	rng       *rand.Rand
	closed    bool

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewSegment creates a segment and starts frame delivery.
func NewSegment(config SegmentConfig) *Segment {
	addrA, addrB := config.AddressA, config.AddressB
	if addrA == 0 {
		addrA = 0x0001
	}
	if addrB == 0 {
		addrB = 0x0002
	}
	interval := config.ProcessInterval
	if interval == 0 {
		interval = time.Millisecond
	}

	s := &Segment{
		bridge:    test.NewBridge(),
		condition: config.Condition,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		stopCh:    make(chan struct{}),
	}
	if config.LoggerFactory != nil {
		s.log = config.LoggerFactory.NewLogger("transport-segment")
	}

	s.a = &Endpoint{seg: s, addr: addrA, conn: s.bridge.GetConn0()}
	s.b = &Endpoint{seg: s, addr: addrB, conn: s.bridge.GetConn1()}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.bridge.Tick()
			}
		}
	}()

	return s
}

// A returns the first endpoint.
func (s *Segment) A() *Endpoint { return s.a }

// B returns the second endpoint.
func (s *Segment) B() *Endpoint { return s.b }

// SetCondition replaces the link condition for subsequent frames.
func (s *Segment) SetCondition(cond LinkCondition) {
	s.mu.Lock()
	s.condition = cond
	s.mu.Unlock()
}

// Close stops delivery and closes both endpoints. Attached read loops
// terminate once their connection reports closure.
func (s *Segment) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()

	err := s.bridge.GetConn0().Close()
	if cerr := s.bridge.GetConn1().Close(); err == nil {
		err = cerr
	}

	s.a.wg.Wait()
	s.b.wg.Wait()
	return err
}

// Endpoint is one side of a Segment. It implements model.Sender, and once
// attached feeds every received frame into its model in arrival order.
type Endpoint struct {
	seg  *Segment
	addr uint16
	conn net.Conn

	mu    sync.Mutex
	model *model.Model
	wg    sync.WaitGroup
}

// Address returns the endpoint's unicast address.
func (e *Endpoint) Address() uint16 { return e.addr }

// Attach connects a model to the endpoint and starts the read loop. Frames
// are decoded and handed to m.Receive one at a time, preserving arrival
// order.
func (e *Endpoint) Attach(m *model.Model) {
	e.mu.Lock()
	e.model = m
	e.mu.Unlock()

	e.wg.Add(1)
	go e.readLoop()
}

func (e *Endpoint) readLoop() {
	defer e.wg.Done()

	buf := make([]byte, 1500)
	for {
		n, err := e.conn.Read(buf)
		if err != nil {
			return
		}
		if err := e.deliver(buf[:n]); err != nil {
			if e.seg.log != nil {
				e.seg.log.Warnf("endpoint %04x: dropping frame: %v", e.addr, err)
			}
		}
	}
}

func (e *Endpoint) deliver(frame []byte) error {
	kctx, source, dst, keyIndex, payload, err := unmarshalFrame(frame)
	if err != nil {
		return err
	}

	e.mu.Lock()
	m := e.model
	e.mu.Unlock()
	if m == nil {
		return ErrNotAttached
	}

	m.Receive(kctx, source, dst, keyIndex, payload)
	return nil
}

// Send frames one outbound message and writes it to the peer, subject to
// the segment's link condition.
func (e *Endpoint) Send(_ context.Context, out model.Outbound) error {
	s := e.seg
	s.mu.Lock()
	closed := s.closed
	cond := s.condition
	drop := cond.DropRate > 0 && s.rng.Float64() < cond.DropRate
	dup := cond.DuplicateRate > 0 && s.rng.Float64() < cond.DuplicateRate
	s.mu.Unlock()

	if closed {
		return ErrClosed
	}
	if drop {
		// The bearer accepted the frame; it just never arrives.
		return nil
	}

	frame := marshalFrame(out.Context, e.addr, out.Destination, out.KeyIndex, out.Payload)
	if dup {
		if _, err := e.conn.Write(frame); err != nil {
			return err
		}
	}
	_, err := e.conn.Write(frame)
	return err
}

// Frame layout: key context (1), source address (2, little-endian),
// destination form (1: 0 unicast, 1 virtual), destination (2 or 16),
// key index (2, little-endian), access payload.
const (
	frameUnicast = 0x00
	frameVirtual = 0x01
)

func marshalFrame(kctx model.KeyContext, source uint16, dst model.Destination, keyIndex uint16, payload []byte) []byte {
	frame := make([]byte, 0, 8+16+len(payload))
	frame = append(frame, byte(kctx), byte(source), byte(source>>8))
	if dst.IsVirtual() {
		frame = append(frame, frameVirtual)
		frame = append(frame, dst.Label[:]...)
	} else {
		frame = append(frame, frameUnicast, byte(dst.Address), byte(dst.Address>>8))
	}
	frame = append(frame, byte(keyIndex), byte(keyIndex>>8))
	return append(frame, payload...)
}

func unmarshalFrame(frame []byte) (kctx model.KeyContext, source uint16, dst model.Destination, keyIndex uint16, payload []byte, err error) {
	if len(frame) < 4 {
		err = ErrShortFrame
		return
	}
	kctx = model.KeyContext(frame[0])
	source = uint16(frame[1]) | uint16(frame[2])<<8

	rest := frame[4:]
	switch frame[3] {
	case frameUnicast:
		if len(rest) < 2 {
			err = ErrShortFrame
			return
		}
		dst = model.Unicast(uint16(rest[0]) | uint16(rest[1])<<8)
		rest = rest[2:]
	case frameVirtual:
		if len(rest) < 16 {
			err = ErrShortFrame
			return
		}
		var label uuid.UUID
		copy(label[:], rest[:16])
		dst = model.Virtual(label)
		rest = rest[16:]
	default:
		err = ErrShortFrame
		return
	}

	if len(rest) < 2 {
		err = ErrShortFrame
		return
	}
	keyIndex = uint16(rest[0]) | uint16(rest[1])<<8
	payload = rest[2:]
	return
}
