package access

import (
	"fmt"
	"sync"
)

// Message is a decoded access message: an opcode plus its parameter fields.
// Immutable by convention once produced by Decode or accepted by Encode.
type Message struct {
	Opcode Opcode
	Name   string
	Fields Values
}

func (m *Message) String() string {
	return fmt.Sprintf("%s %s %v", m.Name, m.Opcode, m.Fields)
}

type schemaEntry struct {
	name   string
	schema Schema
}

// Registry maps opcodes to message schemas. Every opcode maps to exactly
// one schema; duplicate registration is a programming error and panics.
//
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	byOpcode map[Opcode]schemaEntry
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{byOpcode: make(map[Opcode]schemaEntry)}
}

// Register adds a schema under the given opcode and message name.
// Panics on an invalid opcode or duplicate registration.
func (r *Registry) Register(op Opcode, name string, schema Schema) {
	if !op.Valid() {
		panic(fmt.Sprintf("access: registering invalid opcode %#x (%s)", uint32(op), name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byOpcode[op]; ok {
		panic(fmt.Sprintf("access: opcode %s registered twice (%s, %s)", op, prev.name, name))
	}
	r.byOpcode[op] = schemaEntry{name: name, schema: schema}
}

// Lookup returns the message name and schema registered for an opcode.
func (r *Registry) Lookup(op Opcode) (string, Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byOpcode[op]
	if !ok {
		return "", nil, &UnknownOpcodeError{Opcode: op}
	}
	return e.name, e.schema, nil
}

// Encode produces the wire form of a message: opcode bytes followed by the
// payload laid out per the registered schema. Every required field must be
// present and within its descriptor's domain.
func (r *Registry) Encode(op Opcode, fields Values) ([]byte, error) {
	_, schema, err := r.Lookup(op)
	if err != nil {
		return nil, err
	}
	opBytes, err := op.Encode()
	if err != nil {
		return nil, err
	}
	return encodeFields(opBytes, schema, fields, "")
}

// Decode parses a complete access PDU: resolves the opcode, looks up its
// schema and decodes the payload. Fails with ErrTruncated when the payload
// is shorter than the schema requires and ErrTrailingBytes when a
// fixed-length schema leaves bytes unconsumed.
func (r *Registry) Decode(data []byte) (*Message, error) {
	op, payload, err := DecodeOpcode(data)
	if err != nil {
		return nil, err
	}
	name, schema, err := r.Lookup(op)
	if err != nil {
		return nil, err
	}

	vals := make(Values)
	rd := &reader{data: payload}
	if err := decodeFields(rd, schema, vals, ""); err != nil {
		return nil, err
	}
	if rd.remaining() != 0 {
		return nil, ErrTrailingBytes
	}

	return &Message{Opcode: op, Name: name, Fields: vals}, nil
}

// defaultRegistry holds every schema registered by the family files.
var defaultRegistry = NewRegistry()

// Register adds a schema to the package default registry.
func Register(op Opcode, name string, schema Schema) {
	defaultRegistry.Register(op, name, schema)
}

// Lookup consults the package default registry.
func Lookup(op Opcode) (string, Schema, error) {
	return defaultRegistry.Lookup(op)
}

// Encode encodes against the package default registry.
func Encode(op Opcode, fields Values) ([]byte, error) {
	return defaultRegistry.Encode(op, fields)
}

// Decode decodes against the package default registry.
func Decode(data []byte) (*Message, error) {
	return defaultRegistry.Decode(data)
}
