package access

// Health model opcodes (Mesh Profile 4.3.4).
const (
	OpHealthCurrentStatus              Opcode = 0x04
	OpHealthFaultStatus                Opcode = 0x05
	OpHealthAttentionGet               Opcode = 0x8004
	OpHealthAttentionSet               Opcode = 0x8005
	OpHealthAttentionSetUnacknowledged Opcode = 0x8006
	OpHealthAttentionStatus            Opcode = 0x8007
	OpHealthFaultClear                 Opcode = 0x802F
	OpHealthFaultClearUnacknowledged   Opcode = 0x8030
	OpHealthFaultGet                   Opcode = 0x8031
	OpHealthFaultTest                  Opcode = 0x8032
	OpHealthFaultTestUnacknowledged    Opcode = 0x8033
	OpHealthPeriodGet                  Opcode = 0x8034
	OpHealthPeriodSet                  Opcode = 0x8035
	OpHealthPeriodSetUnacknowledged    Opcode = 0x8036
	OpHealthPeriodStatus               Opcode = 0x8037
)

func init() {
	faultStatus := Schema{
		u8("test_id"),
		u16("company_id"),
		list("fault_array", u8("fault")),
	}

	faultTest := Schema{
		u8("test_id"),
		u16("company_id"),
	}

	companyID := Schema{
		u16("company_id"),
	}

	period := Schema{
		u8max("fast_period_divisor", 15),
	}

	attention := Schema{
		u8("attention"),
	}

	Register(OpHealthCurrentStatus, "HealthCurrentStatus", faultStatus)
	Register(OpHealthFaultStatus, "HealthFaultStatus", faultStatus)
	Register(OpHealthFaultGet, "HealthFaultGet", companyID)
	Register(OpHealthFaultClear, "HealthFaultClear", companyID)
	Register(OpHealthFaultClearUnacknowledged, "HealthFaultClearUnacknowledged", companyID)
	Register(OpHealthFaultTest, "HealthFaultTest", faultTest)
	Register(OpHealthFaultTestUnacknowledged, "HealthFaultTestUnacknowledged", faultTest)
	Register(OpHealthPeriodGet, "HealthPeriodGet", Schema{})
	Register(OpHealthPeriodSet, "HealthPeriodSet", period)
	Register(OpHealthPeriodSetUnacknowledged, "HealthPeriodSetUnacknowledged", period)
	Register(OpHealthPeriodStatus, "HealthPeriodStatus", period)
	Register(OpHealthAttentionGet, "HealthAttentionGet", Schema{})
	Register(OpHealthAttentionSet, "HealthAttentionSet", attention)
	Register(OpHealthAttentionSetUnacknowledged, "HealthAttentionSetUnacknowledged", attention)
	Register(OpHealthAttentionStatus, "HealthAttentionStatus", attention)
}
