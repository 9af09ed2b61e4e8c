package access

// Scene opcodes (Mesh Model 7.1).
const (
	OpSceneStatus               Opcode = 0x5E
	OpSceneGet                  Opcode = 0x8241
	OpSceneRecall               Opcode = 0x8242
	OpSceneRecallUnacknowledged Opcode = 0x8243
	OpSceneRegisterGet          Opcode = 0x8244
	OpSceneRegisterStatus       Opcode = 0x8245
	OpSceneStore                Opcode = 0x8246
	OpSceneStoreUnacknowledged  Opcode = 0x8247
	OpSceneDelete               Opcode = 0x829E
	OpSceneDeleteUnacknowledged Opcode = 0x829F
)

// Scene status codes (Mesh Model 5.2.2.11).
const (
	SceneSuccess      = 0x00
	SceneRegisterFull = 0x01
	SceneNotFound     = 0x02
)

var sceneStatusCodes = []uint64{SceneSuccess, SceneRegisterFull, SceneNotFound}

func init() {
	recall := Schema{
		u16min("scene_number", 1),
		u8("tid"),
		optionalSetParams(),
	}

	status := Schema{
		enum8("status_code", sceneStatusCodes...),
		u16("current_scene"),
		optional(
			u16("target_scene"),
			transitionTime("remaining_time"),
		),
	}

	registerStatus := Schema{
		enum8("status_code", sceneStatusCodes...),
		u16("current_scene"),
		listN("scenes", 16, u16("scene")),
	}

	store := Schema{
		u16min("scene_number", 1),
	}

	del := Schema{
		u16("scene_number"),
	}

	Register(OpSceneGet, "SceneGet", Schema{})
	Register(OpSceneRecall, "SceneRecall", recall)
	Register(OpSceneRecallUnacknowledged, "SceneRecallUnacknowledged", recall)
	Register(OpSceneStatus, "SceneStatus", status)
	Register(OpSceneRegisterGet, "SceneRegisterGet", Schema{})
	Register(OpSceneRegisterStatus, "SceneRegisterStatus", registerStatus)
	Register(OpSceneStore, "SceneStore", store)
	Register(OpSceneStoreUnacknowledged, "SceneStoreUnacknowledged", store)
	Register(OpSceneDelete, "SceneDelete", del)
	Register(OpSceneDeleteUnacknowledged, "SceneDeleteUnacknowledged", del)
}
