package access

// Generic Battery opcodes (Mesh Model 7.1).
const (
	OpGenericBatteryGet    Opcode = 0x8223
	OpGenericBatteryStatus Opcode = 0x8224
)

// Battery presence flag values (Mesh Model 3.1.5.2).
const (
	BatteryNotPresent          = 0b00
	BatteryPresentRemovable    = 0b01
	BatteryPresentNonRemovable = 0b10
	BatteryPresenceUnknown     = 0b11
)

// Battery charge indicator values.
const (
	BatteryChargeCriticallyLow = 0b00
	BatteryChargeLow           = 0b01
	BatteryChargeGood          = 0b10
	BatteryChargeUnknown       = 0b11
)

// Battery level / discharge time values meaning "unknown".
const (
	BatteryLevelUnknown         = 0xFF
	BatteryDischargeTimeUnknown = 0xFFFFFF
)

func init() {
	batteryStatus := Schema{
		u8("battery_level"),
		u24("time_to_discharge"),
		u24("time_to_charge"),
		bits(1,
			bf("battery_serviceability_flags", 2),
			bf("battery_charging_flags", 2),
			bf("battery_indicator_flags", 2),
			bf("battery_presence_flags", 2),
		),
	}

	Register(OpGenericBatteryGet, "GenericBatteryGet", Schema{})
	Register(OpGenericBatteryStatus, "GenericBatteryStatus", batteryStatus)
}
