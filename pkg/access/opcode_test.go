package access

import (
	"bytes"
	"errors"
	"testing"
)

func TestOpcodeEncode(t *testing.T) {
	cases := []struct {
		op   Opcode
		want []byte
	}{
		{OpHealthCurrentStatus, []byte{0x04}},
		{0x7E, []byte{0x7E}},
		{OpGenericOnOffSet, []byte{0x82, 0x02}},
		{0xBFFF, []byte{0xBF, 0xFF}},
		{OpSilvairDebug, []byte{0xF5, 0x36, 0x01}},
		{0xC00000, []byte{0xC0, 0x00, 0x00}},
	}
	for _, c := range cases {
		got, err := c.op.Encode()
		if err != nil {
			t.Fatalf("Encode(%s) failed: %v", c.op, err)
		}
		if !bytes.Equal(got, c.want) {
			t.Errorf("Encode(%s) = %x, want %x", c.op, got, c.want)
		}
	}
}

func TestOpcodeEncodeInvalid(t *testing.T) {
	for _, op := range []Opcode{0x7F, 0xFF, 0x4000, 0x7FFF, 0xC000, 0xFFFF, 0x010000, 0xBFFFFF, 0x1000000} {
		if op.Valid() {
			t.Errorf("Valid(%#x) = true, want false", uint32(op))
		}
		if _, err := op.Encode(); !errors.Is(err, ErrMalformedOpcode) {
			t.Errorf("Encode(%#x) error = %v, want ErrMalformedOpcode", uint32(op), err)
		}
	}
}

func TestDecodeOpcode(t *testing.T) {
	cases := []struct {
		data    []byte
		op      Opcode
		payload int
	}{
		{[]byte{0x04, 0xAA, 0xBB}, 0x04, 2},
		{[]byte{0x82, 0x02, 0x01}, 0x8202, 1},
		{[]byte{0xF5, 0x36, 0x01, 0x00}, 0xF53601, 1},
	}
	for _, c := range cases {
		op, payload, err := DecodeOpcode(c.data)
		if err != nil {
			t.Fatalf("DecodeOpcode(%x) failed: %v", c.data, err)
		}
		if op != c.op {
			t.Errorf("DecodeOpcode(%x) = %s, want %s", c.data, op, c.op)
		}
		if len(payload) != c.payload {
			t.Errorf("DecodeOpcode(%x) payload length = %d, want %d", c.data, len(payload), c.payload)
		}
	}
}

func TestDecodeOpcodeMalformed(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x7F}, {0x82}, {0xF5}, {0xF5, 0x36}} {
		if _, _, err := DecodeOpcode(data); !errors.Is(err, ErrMalformedOpcode) {
			t.Errorf("DecodeOpcode(%x) error = %v, want ErrMalformedOpcode", data, err)
		}
	}
}

func TestOpcodeCompanyID(t *testing.T) {
	if got := OpSilvairDebug.CompanyID(); got != 0x0136 {
		t.Errorf("CompanyID = %#04x, want 0x0136", got)
	}
	if got := OpGenericOnOffSet.CompanyID(); got != 0 {
		t.Errorf("CompanyID of SIG opcode = %#04x, want 0", got)
	}
}

func TestOpcodeRoundTrip(t *testing.T) {
	for _, op := range []Opcode{0x00, 0x7E, 0x8000, 0xBFFF, 0xC00000, 0xF53601, 0xFFFFFF} {
		enc, err := op.Encode()
		if err != nil {
			t.Fatalf("Encode(%s) failed: %v", op, err)
		}
		dec, rest, err := DecodeOpcode(enc)
		if err != nil {
			t.Fatalf("DecodeOpcode(%x) failed: %v", enc, err)
		}
		if dec != op || len(rest) != 0 {
			t.Errorf("round trip of %s = %s (%d spare bytes)", op, dec, len(rest))
		}
	}
}
