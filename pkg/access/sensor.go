package access

// Sensor and Sensor Setup opcodes (Mesh Model 7.1).
const (
	OpSensorDescriptorStatus         Opcode = 0x51
	OpSensorStatus                   Opcode = 0x52
	OpSensorColumnStatus             Opcode = 0x53
	OpSensorSeriesStatus             Opcode = 0x54
	OpSensorCadenceSet               Opcode = 0x55
	OpSensorCadenceSetUnacknowledged Opcode = 0x56
	OpSensorCadenceStatus            Opcode = 0x57
	OpSensorSettingsStatus           Opcode = 0x58
	OpSensorSettingGet               Opcode = 0x8236
	OpSensorSettingSet               Opcode = 0x59
	OpSensorSettingSetUnacknowledged Opcode = 0x5A
	OpSensorSettingStatus            Opcode = 0x5B
	OpSensorDescriptorGet            Opcode = 0x8230
	OpSensorGet                      Opcode = 0x8231
	OpSensorColumnGet                Opcode = 0x8232
	OpSensorSeriesGet                Opcode = 0x8233
	OpSensorCadenceGet               Opcode = 0x8234
	OpSensorSettingsGet              Opcode = 0x8235
)

// Sensor sampling functions (Mesh Model 4.1.1.5).
const (
	SensorSamplingUnspecified    = 0x00
	SensorSamplingInstantaneous  = 0x01
	SensorSamplingArithmeticMean = 0x02
	SensorSamplingRMS            = 0x03
	SensorSamplingMaximum        = 0x04
	SensorSamplingMinimum        = 0x05
	SensorSamplingAccumulated    = 0x06
	SensorSamplingCount          = 0x07
)

// Sensor setting access (Mesh Model 4.1.2.3).
const (
	SensorSettingReadOnly  = 0x01
	SensorSettingReadWrite = 0x03
)

func init() {
	sensorGet := Schema{
		optional(u16("property_id")),
	}

	// A full descriptor is eight octets; a sensor that reports only its
	// property ID contributes the two-octet short form instead.
	descriptorStatus := Schema{
		listAlt("descriptors",
			structf("descriptor",
				u16("sensor_property_id"),
				bits(3,
					bf("sensor_positive_tolerance", 12),
					bf("sensor_negative_tolerance", 12),
				),
				u8("sensor_sampling_function"),
				u8("sensor_measurement_period"),
				u8("sensor_update_interval"),
			),
			structf("descriptor",
				u16("sensor_property_id"),
			),
		),
	}

	// Marshalled sensor data is property-dependent and left opaque.
	sensorStatus := Schema{
		tail("sensor_data"),
	}

	cadenceGet := Schema{
		u16("property_id"),
	}

	settingsGet := Schema{
		u16("sensor_property_id"),
	}

	settingsStatus := Schema{
		u16("sensor_property_id"),
		list("sensor_setting_property_ids", u16("sensor_setting_property_id")),
	}

	settingGet := Schema{
		u16("sensor_property_id"),
		u16("sensor_setting_property_id"),
	}

	settingSet := Schema{
		u16("sensor_property_id"),
		u16("sensor_setting_property_id"),
		tail("sensor_setting_raw"),
	}

	settingStatus := Schema{
		u16("sensor_property_id"),
		u16("sensor_setting_property_id"),
		u8("sensor_setting_access"),
		tail("sensor_setting_raw"),
	}

	Register(OpSensorDescriptorGet, "SensorDescriptorGet", sensorGet)
	Register(OpSensorDescriptorStatus, "SensorDescriptorStatus", descriptorStatus)
	Register(OpSensorGet, "SensorGet", sensorGet)
	Register(OpSensorStatus, "SensorStatus", sensorStatus)
	Register(OpSensorCadenceGet, "SensorCadenceGet", cadenceGet)
	Register(OpSensorSettingsGet, "SensorSettingsGet", settingsGet)
	Register(OpSensorSettingsStatus, "SensorSettingsStatus", settingsStatus)
	Register(OpSensorSettingGet, "SensorSettingGet", settingGet)
	Register(OpSensorSettingSet, "SensorSettingSet", settingSet)
	Register(OpSensorSettingSetUnacknowledged, "SensorSettingSetUnacknowledged", settingSet)
	Register(OpSensorSettingStatus, "SensorSettingStatus", settingStatus)
}
