package access

import "testing"

func TestHealthVectors(t *testing.T) {
	cases := []struct {
		name   string
		op     Opcode
		fields Values
		wire   string
	}{
		{
			name: "current status, no faults",
			op:   OpHealthCurrentStatus,
			fields: Values{
				"test_id":     uint64(0x04),
				"company_id":  uint64(0x0136),
				"fault_array": []uint64{},
			},
			wire: "04043601",
		},
		{
			name: "current status, three faults",
			op:   OpHealthCurrentStatus,
			fields: Values{
				"test_id":     uint64(0x00),
				"company_id":  uint64(0x0136),
				"fault_array": []uint64{0x03, 0x04, 0x05},
			},
			wire: "04003601030405",
		},
		{
			name: "fault status",
			op:   OpHealthFaultStatus,
			fields: Values{
				"test_id":     uint64(0x04),
				"company_id":  uint64(0x0136),
				"fault_array": []uint64{0x02, 0x03, 0x04},
			},
			wire: "05043601020304",
		},
		{
			name: "fault test",
			op:   OpHealthFaultTest,
			fields: Values{
				"test_id":    uint64(0x01),
				"company_id": uint64(0x0136),
			},
			wire: "8032013601",
		},
		{
			name:   "fault get",
			op:     OpHealthFaultGet,
			fields: Values{"company_id": uint64(0x0136)},
			wire:   "80313601",
		},
		{
			name:   "period set",
			op:     OpHealthPeriodSet,
			fields: Values{"fast_period_divisor": uint64(0x0F)},
			wire:   "80350F",
		},
		{
			name:   "attention status",
			op:     OpHealthAttentionStatus,
			fields: Values{"attention": uint64(0x05)},
			wire:   "800705",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkRoundTrip(t, c.op, c.fields, c.wire)
		})
	}
}

func TestHealthPeriodDivisorRange(t *testing.T) {
	if _, err := Encode(OpHealthPeriodSet, Values{"fast_period_divisor": 0x10}); err == nil {
		t.Fatal("Encode accepted divisor above 15")
	}
}
