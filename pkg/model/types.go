package model

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meshkit/btmesh/pkg/access"
)

// KeyContext identifies the security material a message is bound to.
// Application-key and device-key traffic carry independent dispatch tables
// and pending-expectation sets.
type KeyContext int

const (
	// AppKey denotes application-key secured traffic.
	AppKey KeyContext = iota

	// DevKey denotes device-key secured traffic (foundation models).
	DevKey
)

func (c KeyContext) String() string {
	switch c {
	case AppKey:
		return "app"
	case DevKey:
		return "dev"
	default:
		return fmt.Sprintf("KeyContext(%d)", int(c))
	}
}

// Destination addresses an outbound message: either a 16-bit mesh address
// or a virtual label UUID (Mesh Profile 3.4.2.3).
type Destination struct {
	// Address is the 16-bit destination when Label is nil.
	Address uint16

	// Label is the virtual address label UUID, nil for non-virtual
	// destinations.
	Label *uuid.UUID
}

// Unicast returns a plain 16-bit address destination.
func Unicast(addr uint16) Destination {
	return Destination{Address: addr}
}

// Virtual returns a virtual label destination.
func Virtual(label uuid.UUID) Destination {
	return Destination{Label: &label}
}

// IsVirtual reports whether the destination is a virtual label.
func (d Destination) IsVirtual() bool { return d.Label != nil }

func (d Destination) String() string {
	if d.Label != nil {
		return d.Label.String()
	}
	return fmt.Sprintf("%04x", d.Address)
}

// Inbound is a decoded message delivered by the transport.
type Inbound struct {
	Context     KeyContext
	Source      uint16
	Destination Destination
	KeyIndex    uint16
	Msg         *access.Message
}

// Outbound is an encoded message handed to the transport. Payload carries
// the opcode bytes followed by the encoded parameters.
type Outbound struct {
	Context     KeyContext
	Destination Destination
	KeyIndex    uint16
	Payload     []byte
}

// Sender transmits one encoded message. It is called once per transmission
// attempt, including each retransmission. Implementations hand the payload
// to an already-secured lower layer.
type Sender interface {
	Send(ctx context.Context, out Outbound) error
}

// Handler consumes one inbound message. Handlers must return quickly and
// must not block; a handler needing further asynchronous work hands off to
// its own goroutine or queue.
type Handler func(in Inbound) error

// Producer yields the message for each transmission attempt. Next is
// invoked anew per attempt so per-attempt content, such as a decreasing
// delay field, may vary.
type Producer interface {
	Next() (access.Opcode, access.Values)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func() (access.Opcode, access.Values)

// Next calls f.
func (f ProducerFunc) Next() (access.Opcode, access.Values) { return f() }

// Request returns a Producer that yields the same message every attempt.
func Request(op access.Opcode, fields access.Values) Producer {
	return ProducerFunc(func() (access.Opcode, access.Values) {
		return op, fields
	})
}
