package access

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// checkRoundTrip encodes fields under op, compares against the expected
// wire form, decodes it back and compares the field maps.
func checkRoundTrip(t *testing.T, op Opcode, fields Values, wire string) {
	t.Helper()
	want := mustHex(t, wire)

	got, err := Encode(op, fields)
	if err != nil {
		t.Fatalf("Encode(%s) failed: %v", op, err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode(%s) = %x, want %x", op, got, want)
	}

	msg, err := Decode(want)
	if err != nil {
		t.Fatalf("Decode(%x) failed: %v", want, err)
	}
	if msg.Opcode != op {
		t.Fatalf("Decode(%x) opcode = %s, want %s", want, msg.Opcode, op)
	}
	if !reflect.DeepEqual(msg.Fields, fields) {
		t.Errorf("Decode(%x) fields = %#v, want %#v", want, msg.Fields, fields)
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	_, err := Decode([]byte{0x7E})
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Fatalf("Decode error = %v, want ErrUnknownOpcode", err)
	}
	var unk *UnknownOpcodeError
	if !errors.As(err, &unk) {
		t.Fatalf("Decode error %v does not wrap UnknownOpcodeError", err)
	}
	if unk.Opcode != 0x7E {
		t.Errorf("UnknownOpcodeError.Opcode = %s, want 0x7E", unk.Opcode)
	}
}

func TestDecodeTruncatedPayload(t *testing.T) {
	// HealthFaultTest needs test_id and company_id.
	if _, err := Decode(mustHex(t, "803201")); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Decode error = %v, want ErrTruncated", err)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	// HealthAttentionSet is a single octet.
	if _, err := Decode(mustHex(t, "80050102")); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("Decode error = %v, want ErrTrailingBytes", err)
	}
}

func TestEncodeMissingField(t *testing.T) {
	_, err := Encode(OpHealthFaultTest, Values{"test_id": 1})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Encode error = %v, want ErrInvalidField", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Encode error %v does not wrap FieldError", err)
	}
	if fe.Field != "company_id" {
		t.Errorf("FieldError.Field = %q, want %q", fe.Field, "company_id")
	}
}

func TestEncodeDomainViolation(t *testing.T) {
	cases := []struct {
		name   string
		op     Opcode
		fields Values
	}{
		{"ttl above maximum", OpConfigDefaultTTLSet, Values{"ttl": 0x80}},
		{"status outside enumeration", OpConfigAppKeyStatus, Values{
			"status": 0x12, "net_key_index": 0, "app_key_index": 0,
		}},
		{"scene number zero", OpSceneStore, Values{"scene_number": 0}},
		{"value too wide for field", OpHealthAttentionSet, Values{"attention": 0x100}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Encode(c.op, c.fields); !errors.Is(err, ErrInvalidField) {
				t.Errorf("Encode error = %v, want ErrInvalidField", err)
			}
		})
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration did not panic")
		}
	}()
	r := NewRegistry()
	r.Register(0x8201, "First", Schema{})
	r.Register(0x8201, "Second", Schema{})
}

func TestRegistryLookup(t *testing.T) {
	name, schema, err := Lookup(OpGenericOnOffSet)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if name != "GenericOnOffSet" {
		t.Errorf("name = %q, want %q", name, "GenericOnOffSet")
	}
	if len(schema) == 0 {
		t.Error("schema is empty")
	}

	if _, _, err := Lookup(0x7E); !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("Lookup(0x7E) error = %v, want ErrUnknownOpcode", err)
	}
}
