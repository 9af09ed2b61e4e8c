package access

// Time opcodes (Mesh Model 7.1).
const (
	OpTimeSet           Opcode = 0x5C
	OpTimeStatus        Opcode = 0x5D
	OpTimeGet           Opcode = 0x8237
	OpTimeRoleGet       Opcode = 0x8238
	OpTimeRoleSet       Opcode = 0x8239
	OpTimeRoleStatus    Opcode = 0x823A
	OpTimeZoneGet       Opcode = 0x823B
	OpTimeZoneSet       Opcode = 0x823C
	OpTimeZoneStatus    Opcode = 0x823D
	OpTAIUTCDeltaGet    Opcode = 0x823E
	OpTAIUTCDeltaSet    Opcode = 0x823F
	OpTAIUTCDeltaStatus Opcode = 0x8240
)

// Time Role states (Mesh Model 5.1.2).
const (
	TimeRoleNone      = 0x00
	TimeRoleAuthority = 0x01
	TimeRoleRelay     = 0x02
	TimeRoleClient    = 0x03
)

// Zero points of the offset-encoded time fields (Mesh Model 5.1.1).
const (
	TAIUTCDeltaZero    = 0xFF
	TimeZoneOffsetZero = 0x40
)

// taiUTCDelta is a 15-bit delta with one bit of padding, packed over
// two bytes little-endian.
func taiUTCDelta(name string) Field {
	return bits(2, pad(1), bf(name, 15))
}

func init() {
	// A Time PDU with tai_seconds of zero carries no further fields.
	timeState := Schema{
		u40("tai_seconds"),
		optional(
			u8("subsecond"),
			u8("uncertainty"),
			bits(2,
				bf("tai_utc_delta", 15),
				bf("time_authority", 1),
			),
			u8("time_zone_offset"),
		),
	}

	role := Schema{
		enum8("time_role", TimeRoleNone, TimeRoleAuthority, TimeRoleRelay, TimeRoleClient),
	}

	zoneSet := Schema{
		u8("time_zone_offset_new"),
		u40("tai_of_zone_change"),
	}

	zoneStatus := Schema{
		u8("time_zone_offset_current"),
		u8("time_zone_offset_new"),
		u40("tai_of_zone_change"),
	}

	deltaSet := Schema{
		taiUTCDelta("tai_utc_delta_new"),
		u40("tai_of_delta_change"),
	}

	deltaStatus := Schema{
		taiUTCDelta("tai_utc_delta_current"),
		taiUTCDelta("tai_utc_delta_new"),
		u40("tai_of_delta_change"),
	}

	Register(OpTimeGet, "TimeGet", Schema{})
	Register(OpTimeSet, "TimeSet", timeState)
	Register(OpTimeStatus, "TimeStatus", timeState)
	Register(OpTimeRoleGet, "TimeRoleGet", Schema{})
	Register(OpTimeRoleSet, "TimeRoleSet", role)
	Register(OpTimeRoleStatus, "TimeRoleStatus", role)
	Register(OpTimeZoneGet, "TimeZoneGet", Schema{})
	Register(OpTimeZoneSet, "TimeZoneSet", zoneSet)
	Register(OpTimeZoneStatus, "TimeZoneStatus", zoneStatus)
	Register(OpTAIUTCDeltaGet, "TAIUTCDeltaGet", Schema{})
	Register(OpTAIUTCDeltaSet, "TAIUTCDeltaSet", deltaSet)
	Register(OpTAIUTCDeltaStatus, "TAIUTCDeltaStatus", deltaStatus)
}
