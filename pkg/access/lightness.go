package access

// Light Lightness opcodes (Mesh Model 7.1).
const (
	OpLightLightnessGet                     Opcode = 0x824B
	OpLightLightnessSet                     Opcode = 0x824C
	OpLightLightnessSetUnacknowledged       Opcode = 0x824D
	OpLightLightnessStatus                  Opcode = 0x824E
	OpLightLightnessLinearGet               Opcode = 0x824F
	OpLightLightnessLinearSet               Opcode = 0x8250
	OpLightLightnessLinearSetUnacknowledged Opcode = 0x8251
	OpLightLightnessLinearStatus            Opcode = 0x8252
	OpLightLightnessLastGet                 Opcode = 0x8253
	OpLightLightnessLastStatus              Opcode = 0x8254
	OpLightLightnessDefaultGet              Opcode = 0x8255
	OpLightLightnessDefaultStatus           Opcode = 0x8256
	OpLightLightnessRangeGet                Opcode = 0x8257
	OpLightLightnessRangeStatus             Opcode = 0x8258
)

// Light Lightness Setup opcodes.
const (
	OpLightLightnessDefaultSet               Opcode = 0x8259
	OpLightLightnessDefaultSetUnacknowledged Opcode = 0x825A
	OpLightLightnessRangeSet                 Opcode = 0x825B
	OpLightLightnessRangeSetUnacknowledged   Opcode = 0x825C
)

func init() {
	set := Schema{
		u16("lightness"),
		u8("tid"),
		optionalSetParams(),
	}

	status := Schema{
		u16("present_lightness"),
		optional(
			u16("target_lightness"),
			transitionTime("remaining_time"),
		),
	}

	single := Schema{
		u16("lightness"),
	}

	rng := Schema{
		u16("range_min"),
		u16("range_max"),
	}

	rangeStatus := Schema{
		enum8("status", statusCodes...),
		u16("range_min"),
		u16("range_max"),
	}

	Register(OpLightLightnessGet, "LightLightnessGet", Schema{})
	Register(OpLightLightnessSet, "LightLightnessSet", set)
	Register(OpLightLightnessSetUnacknowledged, "LightLightnessSetUnacknowledged", set)
	Register(OpLightLightnessStatus, "LightLightnessStatus", status)
	Register(OpLightLightnessLinearGet, "LightLightnessLinearGet", Schema{})
	Register(OpLightLightnessLinearSet, "LightLightnessLinearSet", set)
	Register(OpLightLightnessLinearSetUnacknowledged, "LightLightnessLinearSetUnacknowledged", set)
	Register(OpLightLightnessLinearStatus, "LightLightnessLinearStatus", status)
	Register(OpLightLightnessLastGet, "LightLightnessLastGet", Schema{})
	Register(OpLightLightnessLastStatus, "LightLightnessLastStatus", single)
	Register(OpLightLightnessDefaultGet, "LightLightnessDefaultGet", Schema{})
	Register(OpLightLightnessDefaultStatus, "LightLightnessDefaultStatus", single)
	Register(OpLightLightnessRangeGet, "LightLightnessRangeGet", Schema{})
	Register(OpLightLightnessRangeStatus, "LightLightnessRangeStatus", rangeStatus)

	Register(OpLightLightnessDefaultSet, "LightLightnessDefaultSet", single)
	Register(OpLightLightnessDefaultSetUnacknowledged, "LightLightnessDefaultSetUnacknowledged", single)
	Register(OpLightLightnessRangeSet, "LightLightnessRangeSet", rng)
	Register(OpLightLightnessRangeSetUnacknowledged, "LightLightnessRangeSetUnacknowledged", rng)
}
