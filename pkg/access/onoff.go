package access

// Generic OnOff opcodes (Mesh Model 7.1).
const (
	OpGenericOnOffGet               Opcode = 0x8201
	OpGenericOnOffSet               Opcode = 0x8202
	OpGenericOnOffSetUnacknowledged Opcode = 0x8203
	OpGenericOnOffStatus            Opcode = 0x8204
)

func init() {
	onOffSet := Schema{
		u8("onoff"),
		u8("tid"),
		optionalSetParams(),
	}

	onOffStatus := Schema{
		u8("present_onoff"),
		optional(
			u8("target_onoff"),
			transitionTime("remaining_time"),
		),
	}

	Register(OpGenericOnOffGet, "GenericOnOffGet", Schema{})
	Register(OpGenericOnOffSet, "GenericOnOffSet", onOffSet)
	Register(OpGenericOnOffSetUnacknowledged, "GenericOnOffSetUnacknowledged", onOffSet)
	Register(OpGenericOnOffStatus, "GenericOnOffStatus", onOffStatus)
}
