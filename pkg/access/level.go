package access

// Generic Level opcodes (Mesh Model 7.1).
const (
	OpGenericLevelGet               Opcode = 0x8205
	OpGenericLevelSet               Opcode = 0x8206
	OpGenericLevelSetUnacknowledged Opcode = 0x8207
	OpGenericLevelStatus            Opcode = 0x8208
	OpGenericDeltaSet               Opcode = 0x8209
	OpGenericDeltaSetUnacknowledged Opcode = 0x820A
	OpGenericMoveSet                Opcode = 0x820B
	OpGenericMoveSetUnacknowledged  Opcode = 0x820C
)

func init() {
	levelSet := Schema{
		s16("level"),
		u8("tid"),
		optionalSetParams(),
	}

	deltaSet := Schema{
		s32("delta_level"),
		u8("tid"),
		optionalSetParams(),
	}

	moveSet := Schema{
		s16("delta_level"),
		u8("tid"),
		optionalSetParams(),
	}

	levelStatus := Schema{
		s16("present_level"),
		optional(
			s16("target_level"),
			transitionTime("remaining_time"),
		),
	}

	Register(OpGenericLevelGet, "GenericLevelGet", Schema{})
	Register(OpGenericLevelSet, "GenericLevelSet", levelSet)
	Register(OpGenericLevelSetUnacknowledged, "GenericLevelSetUnacknowledged", levelSet)
	Register(OpGenericLevelStatus, "GenericLevelStatus", levelStatus)
	Register(OpGenericDeltaSet, "GenericDeltaSet", deltaSet)
	Register(OpGenericDeltaSetUnacknowledged, "GenericDeltaSetUnacknowledged", deltaSet)
	Register(OpGenericMoveSet, "GenericMoveSet", moveSet)
	Register(OpGenericMoveSetUnacknowledged, "GenericMoveSetUnacknowledged", moveSet)
}
