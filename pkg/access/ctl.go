package access

// Light CTL opcodes (Mesh Model 7.1).
const (
	OpLightCTLGet                          Opcode = 0x825D
	OpLightCTLSet                          Opcode = 0x825E
	OpLightCTLSetUnacknowledged            Opcode = 0x825F
	OpLightCTLStatus                       Opcode = 0x8260
	OpLightCTLTemperatureGet               Opcode = 0x8261
	OpLightCTLTemperatureRangeGet          Opcode = 0x8262
	OpLightCTLTemperatureRangeStatus       Opcode = 0x8263
	OpLightCTLTemperatureSet               Opcode = 0x8264
	OpLightCTLTemperatureSetUnacknowledged Opcode = 0x8265
	OpLightCTLTemperatureStatus            Opcode = 0x8266
	OpLightCTLTemperatureDefaultGet        Opcode = 0x8267
	OpLightCTLTemperatureDefaultStatus     Opcode = 0x8268
)

// Light CTL Setup opcodes.
const (
	OpLightCTLTemperatureDefaultSet               Opcode = 0x8269
	OpLightCTLTemperatureDefaultSetUnacknowledged Opcode = 0x826A
	OpLightCTLTemperatureRangeSet                 Opcode = 0x826B
	OpLightCTLTemperatureRangeSetUnacknowledged   Opcode = 0x826C
)

func init() {
	ctlDefault := Schema{
		u16("ctl_lightness"),
		u16("ctl_temperature"),
		u16("ctl_delta_uv"),
	}

	ctlSet := Schema{
		u16("ctl_lightness"),
		u16("ctl_temperature"),
		u16("ctl_delta_uv"),
		u8("tid"),
		optionalSetParams(),
	}

	ctlStatus := Schema{
		u16("present_ctl_lightness"),
		u16("present_ctl_temperature"),
		optional(
			u16("target_ctl_lightness"),
			u16("target_ctl_temperature"),
			transitionTime("remaining_time"),
		),
	}

	temperatureSet := Schema{
		u16("ctl_temperature"),
		u16("ctl_delta_uv"),
		u8("tid"),
		optionalSetParams(),
	}

	temperatureStatus := Schema{
		u16("present_ctl_temperature"),
		u16("present_ctl_delta_uv"),
		optional(
			u16("target_ctl_temperature"),
			u16("target_ctl_delta_uv"),
			transitionTime("remaining_time"),
		),
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

	Register(OpLightCTLGet, "LightCTLGet", Schema{})
	Register(OpLightCTLSet, "LightCTLSet", ctlSet)
	Register(OpLightCTLSetUnacknowledged, "LightCTLSetUnacknowledged", ctlSet)
	Register(OpLightCTLStatus, "LightCTLStatus", ctlStatus)
	Register(OpLightCTLTemperatureGet, "LightCTLTemperatureGet", Schema{})
	Register(OpLightCTLTemperatureRangeGet, "LightCTLTemperatureRangeGet", Schema{})
	Register(OpLightCTLTemperatureRangeStatus, "LightCTLTemperatureRangeStatus", rangeStatus)
	Register(OpLightCTLTemperatureSet, "LightCTLTemperatureSet", temperatureSet)
	Register(OpLightCTLTemperatureSetUnacknowledged, "LightCTLTemperatureSetUnacknowledged", temperatureSet)
	Register(OpLightCTLTemperatureStatus, "LightCTLTemperatureStatus", temperatureStatus)
	Register(OpLightCTLTemperatureDefaultGet, "LightCTLTemperatureDefaultGet", Schema{})
	Register(OpLightCTLTemperatureDefaultStatus, "LightCTLTemperatureDefaultStatus", ctlDefault)

	Register(OpLightCTLTemperatureDefaultSet, "LightCTLTemperatureDefaultSet", ctlDefault)
	Register(OpLightCTLTemperatureDefaultSetUnacknowledged, "LightCTLTemperatureDefaultSetUnacknowledged", ctlDefault)
	Register(OpLightCTLTemperatureRangeSet, "LightCTLTemperatureRangeSet", rng)
	Register(OpLightCTLTemperatureRangeSetUnacknowledged, "LightCTLTemperatureRangeSetUnacknowledged", rng)
}
