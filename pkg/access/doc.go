// Package access implements the Bluetooth Mesh access layer message codec.
//
// Every access message is an opcode (1, 2 or 3 bytes, Mesh Profile 3.7.3.1)
// followed by a parameter payload whose layout is fixed per opcode. The
// package keeps one declarative Schema per opcode in a Registry; a single
// generic codec walks the schema's field descriptors to encode or decode,
// instead of one hand-written parser per message type.
//
// Decoded messages are represented as a Message: the opcode plus a
// field-name to value map. Canonical value types produced by Decode are
// uint64, int64, []byte, string, []uint64, map[string]interface{} and
// []map[string]interface{}; Encode accepts any Go integer type for numeric
// fields and validates each value against its descriptor's domain, so for
// any accepted input Decode(Encode(v)) == v.
//
// # Message families
//
// Schemas for the supported families are registered with the package
// default registry at init time, one file per family:
//   - foundation/config (foundation.go)
//   - health (health.go)
//   - generic on-off, level, battery (onoff.go, level.go, battery.go)
//   - light lightness and CTL, with setup servers (lightness.go, ctl.go)
//   - scene (scene.go)
//   - time (timefmt.go)
//   - sensor (sensor.go)
//   - vendor diagnostic/debug servers (vendor.go)
//
// All multi-byte scalars are little-endian. Bit-packed groups reproduce the
// exact packing of the published message layouts; values are kept in raw
// wire units (interval steps, log fields), with conversion helpers in
// generics.go.
package access
