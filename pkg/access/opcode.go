package access

import "fmt"

// Opcode identifies an access message type.
//
// The numeric value equals the big-endian interpretation of the wire bytes:
//   - 1-byte opcodes: 0x00..0x7E (0x7F is reserved, Mesh Profile 3.7.3.1)
//   - 2-byte opcodes: 0x8000..0xBFFF (first byte 0b10xxxxxx)
//   - 3-byte opcodes: 0xC00000..0xFFFFFF (first byte 0b11xxxxxx), used for
//     vendor messages; the low two bytes carry the company ID little-endian.
type Opcode uint32

// Size returns the encoded opcode length in bytes.
func (o Opcode) Size() int {
	switch {
	case o <= 0xFF:
		return 1
	case o <= 0xFFFF:
		return 2
	default:
		return 3
	}
}

// IsVendor reports whether the opcode uses the 3-byte vendor form.
func (o Opcode) IsVendor() bool { return o.Size() == 3 }

// CompanyID returns the company identifier of a vendor opcode.
// The two trailing opcode bytes hold the company ID little-endian,
// so SILVAIR's 0xF53601 yields 0x0136.
func (o Opcode) CompanyID() uint16 {
	if !o.IsVendor() {
		return 0
	}
	return uint16(o&0xFF)<<8 | uint16(o>>8)&0xFF
}

// Valid reports whether the opcode value matches one of the three wire
// shapes. 0x7F and out-of-shape values (e.g. 0xFF, 0x4000) are invalid.
func (o Opcode) Valid() bool {
	switch {
	case o <= 0xFF:
		return o < 0x7F
	case o <= 0xFFFF:
		return o>>14 == 0b10
	case o <= 0xFFFFFF:
		return o>>22 == 0b11
	default:
		return false
	}
}

func (o Opcode) String() string {
	switch o.Size() {
	case 1:
		return fmt.Sprintf("0x%02X", uint32(o))
	case 2:
		return fmt.Sprintf("0x%04X", uint32(o))
	default:
		return fmt.Sprintf("0x%06X", uint32(o))
	}
}

// Encode returns the canonical minimal wire form of the opcode.
// Returns ErrMalformedOpcode for values outside the three shapes.
func (o Opcode) Encode() ([]byte, error) {
	if !o.Valid() {
		return nil, ErrMalformedOpcode
	}
	switch o.Size() {
	case 1:
		return []byte{byte(o)}, nil
	case 2:
		return []byte{byte(o >> 8), byte(o)}, nil
	default:
		return []byte{byte(o >> 16), byte(o >> 8), byte(o)}, nil
	}
}

// DecodeOpcode parses the opcode prefix of an access PDU and returns the
// opcode together with the remaining payload bytes.
func DecodeOpcode(data []byte) (Opcode, []byte, error) {
	if len(data) == 0 {
		return 0, nil, ErrMalformedOpcode
	}

	b0 := data[0]
	switch {
	case b0 == 0x7F:
		// Reserved for future use.
		return 0, nil, ErrMalformedOpcode

	case b0>>7 == 0:
		return Opcode(b0), data[1:], nil

	case b0>>6 == 0b10:
		if len(data) < 2 {
			return 0, nil, ErrMalformedOpcode
		}
		return Opcode(b0)<<8 | Opcode(data[1]), data[2:], nil

	default: // 0b11xxxxxx
		if len(data) < 3 {
			return 0, nil, ErrMalformedOpcode
		}
		return Opcode(b0)<<16 | Opcode(data[1])<<8 | Opcode(data[2]), data[3:], nil
	}
}
