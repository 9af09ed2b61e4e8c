package access

// Foundation model opcodes (Mesh Profile 4.3.4).
const (
	OpConfigAppKeyAdd                     Opcode = 0x00
	OpConfigAppKeyUpdate                  Opcode = 0x01
	OpConfigCompositionDataStatus         Opcode = 0x02
	OpConfigModelPublicationSet           Opcode = 0x03
	OpConfigHeartbeatPublicationStatus    Opcode = 0x06
	OpConfigAppKeyDelete                  Opcode = 0x8000
	OpConfigAppKeyGet                     Opcode = 0x8001
	OpConfigAppKeyList                    Opcode = 0x8002
	OpConfigAppKeyStatus                  Opcode = 0x8003
	OpConfigCompositionDataGet            Opcode = 0x8008
	OpConfigBeaconGet                     Opcode = 0x8009
	OpConfigBeaconSet                     Opcode = 0x800A
	OpConfigBeaconStatus                  Opcode = 0x800B
	OpConfigDefaultTTLGet                 Opcode = 0x800C
	OpConfigDefaultTTLSet                 Opcode = 0x800D
	OpConfigDefaultTTLStatus              Opcode = 0x800E
	OpConfigFriendGet                     Opcode = 0x800F
	OpConfigFriendSet                     Opcode = 0x8010
	OpConfigFriendStatus                  Opcode = 0x8011
	OpConfigGATTProxyGet                  Opcode = 0x8012
	OpConfigGATTProxySet                  Opcode = 0x8013
	OpConfigGATTProxyStatus               Opcode = 0x8014
	OpConfigKeyRefreshPhaseGet            Opcode = 0x8015
	OpConfigKeyRefreshPhaseSet            Opcode = 0x8016
	OpConfigKeyRefreshPhaseStatus         Opcode = 0x8017
	OpConfigModelPublicationGet           Opcode = 0x8018
	OpConfigModelPublicationStatus        Opcode = 0x8019
	OpConfigModelPublicationVASet         Opcode = 0x801A
	OpConfigModelSubscriptionAdd          Opcode = 0x801B
	OpConfigModelSubscriptionDelete       Opcode = 0x801C
	OpConfigModelSubscriptionDeleteAll    Opcode = 0x801D
	OpConfigModelSubscriptionOverwrite    Opcode = 0x801E
	OpConfigModelSubscriptionStatus       Opcode = 0x801F
	OpConfigModelSubscriptionVAAdd        Opcode = 0x8020
	OpConfigModelSubscriptionVADelete     Opcode = 0x8021
	OpConfigModelSubscriptionVAOverwrite  Opcode = 0x8022
	OpConfigNetworkTransmitGet            Opcode = 0x8023
	OpConfigNetworkTransmitSet            Opcode = 0x8024
	OpConfigNetworkTransmitStatus         Opcode = 0x8025
	OpConfigRelayGet                      Opcode = 0x8026
	OpConfigRelaySet                      Opcode = 0x8027
	OpConfigRelayStatus                   Opcode = 0x8028
	OpConfigSIGModelSubscriptionGet       Opcode = 0x8029
	OpConfigSIGModelSubscriptionList      Opcode = 0x802A
	OpConfigVendorModelSubscriptionGet    Opcode = 0x802B
	OpConfigVendorModelSubscriptionList   Opcode = 0x802C
	OpConfigLowPowerNodePollTimeoutGet    Opcode = 0x802D
	OpConfigLowPowerNodePollTimeoutStatus Opcode = 0x802E
	OpConfigHeartbeatPublicationGet       Opcode = 0x8038
	OpConfigHeartbeatPublicationSet       Opcode = 0x8039
	OpConfigHeartbeatSubscriptionGet      Opcode = 0x803A
	OpConfigHeartbeatSubscriptionSet      Opcode = 0x803B
	OpConfigHeartbeatSubscriptionStatus   Opcode = 0x803C
	OpConfigModelAppBind                  Opcode = 0x803D
	OpConfigModelAppStatus                Opcode = 0x803E
	OpConfigModelAppUnbind                Opcode = 0x803F
	OpConfigNetKeyAdd                     Opcode = 0x8040
	OpConfigNetKeyDelete                  Opcode = 0x8041
	OpConfigNetKeyGet                     Opcode = 0x8042
	OpConfigNetKeyList                    Opcode = 0x8043
	OpConfigNetKeyStatus                  Opcode = 0x8044
	OpConfigNetKeyUpdate                  Opcode = 0x8045
	OpConfigNodeIdentityGet               Opcode = 0x8046
	OpConfigNodeIdentitySet               Opcode = 0x8047
	OpConfigNodeIdentityStatus            Opcode = 0x8048
	OpConfigNodeReset                     Opcode = 0x8049
	OpConfigNodeResetStatus               Opcode = 0x804A
	OpConfigSIGModelAppGet                Opcode = 0x804B
	OpConfigSIGModelAppList               Opcode = 0x804C
	OpConfigVendorModelAppGet             Opcode = 0x804D
	OpConfigVendorModelAppList            Opcode = 0x804E
)

// Foundation status codes (Mesh Profile 4.3.2.2.1).
const (
	StatusSuccess                        = 0x00
	StatusInvalidAddress                 = 0x01
	StatusInvalidModel                   = 0x02
	StatusInvalidAppKeyIndex             = 0x03
	StatusInvalidNetKeyIndex             = 0x04
	StatusInsufficientResources          = 0x05
	StatusKeyIndexAlreadyStored          = 0x06
	StatusInvalidPublishParameters       = 0x07
	StatusNotASubscribeModel             = 0x08
	StatusStorageFailure                 = 0x09
	StatusFeatureNotSupported            = 0x0A
	StatusCannotUpdate                   = 0x0B
	StatusCannotRemove                   = 0x0C
	StatusCannotBind                     = 0x0D
	StatusTemporarilyUnableToChangeState = 0x0E
	StatusCannotSet                      = 0x0F
	StatusUnspecifiedError               = 0x10
	StatusInvalidBinding                 = 0x11
)

var statusCodes = []uint64{
	StatusSuccess, StatusInvalidAddress, StatusInvalidModel,
	StatusInvalidAppKeyIndex, StatusInvalidNetKeyIndex,
	StatusInsufficientResources, StatusKeyIndexAlreadyStored,
	StatusInvalidPublishParameters, StatusNotASubscribeModel,
	StatusStorageFailure, StatusFeatureNotSupported, StatusCannotUpdate,
	StatusCannotRemove, StatusCannotBind, StatusTemporarilyUnableToChangeState,
	StatusCannotSet, StatusUnspecifiedError, StatusInvalidBinding,
}

// Node feature and mode states (Mesh Profile 4.2).
const (
	SecureNetworkBeaconOff = 0x00
	SecureNetworkBeaconOn  = 0x01

	GATTProxyDisabled     = 0x00
	GATTProxyEnabled      = 0x01
	GATTProxyNotSupported = 0x02

	RelayDisabled     = 0x00
	RelayEnabled      = 0x01
	RelayNotSupported = 0x02

	FriendDisabled     = 0x00
	FriendEnabled      = 0x01
	FriendNotSupported = 0x02

	NodeIdentityStopped      = 0x00
	NodeIdentityRunning      = 0x01
	NodeIdentityNotSupported = 0x02
)

// Key refresh phases and transitions (Mesh Profile 4.2.14).
const (
	KeyRefreshPhaseNormal = 0x00
	KeyRefreshPhaseFirst  = 0x01
	KeyRefreshPhaseSecond = 0x02

	KeyRefreshTransitionSecond = 0x02
	KeyRefreshTransitionThird  = 0x03
)

// Key index groups pack 12-bit indices little-endian across the whole
// group, so the first declared subfield lands in the top bits of the
// loaded value (Mesh Profile 4.3.1.1).
func netAndAppKeyIndex() Field {
	return bits(3,
		bf("app_key_index", 12),
		bf("net_key_index", 12),
	)
}

func netKeyIndex() Field {
	return bits(2, pad(4), bf("net_key_index", 12))
}

func appKeyIndex() Field {
	return bits(2, pad(4), bf("app_key_index", 12))
}

// retransmitState is the sssssccc octet shared by the relay, network
// transmit and publish retransmit states.
func retransmitState(name string) Field {
	return structf(name, bits(1,
		bf("interval_steps", 5),
		bf("count", 3),
	))
}

func publishPeriod() Field {
	return structf("publish_period", bits(1,
		bf("step_resolution", 2),
		bf("number_of_steps", 6),
	))
}

func ttl(name string) Field { return u8max(name, 0x7F) }

func sigModel() Field {
	return structf("model", u16("model_id"))
}

func vendorModel() Field {
	return structf("model", u16("vendor_id"), u16("model_id"))
}

func init() {
	beaconSet := Schema{
		enum8("beacon", SecureNetworkBeaconOff, SecureNetworkBeaconOn),
	}

	compositionGet := Schema{
		enum8("page", 0, 1, 255),
	}

	compositionPageZero := Schema{
		u16("cid"),
		u16("pid"),
		u16("vid"),
		u16("crpl"),
		u16("features"),
		list("elements", structf("element",
			u16("location"),
			u8("sig_number"),
			u8("vendor_number"),
			countedList("sig_models", "sig_number",
				structf("sig_model", u16("model_id"))),
			countedList("vendor_models", "vendor_number",
				structf("vendor_model", u16("vendor_id"), u16("model_id"))),
		)),
	}

	compositionStatus := Schema{
		enum8("page", 0, 1, 255),
		switchOn("data", "page", map[uint64]Schema{
			0:   compositionPageZero,
			1:   {tail("raw")},
			255: {tail("raw")},
		}),
	}

	ttlSet := Schema{
		ttl("ttl"),
	}

	gattProxySet := Schema{
		enum8("GATT_proxy", GATTProxyDisabled, GATTProxyEnabled, GATTProxyNotSupported),
	}

	relaySet := Schema{
		enum8("relay", RelayDisabled, RelayEnabled, RelayNotSupported),
		retransmitState("retransmit"),
	}

	publicationGet := Schema{
		u16("element_address"),
		modelID("model"),
	}

	publicationSet := Schema{
		u16("element_address"),
		u16("publish_address"),
		bits(2,
			pad(3),
			bf("credential_flag", 1),
			bf("app_key_index", 12),
		),
		ttl("ttl"),
		publishPeriod(),
		retransmitState("retransmit"),
		modelID("model"),
	}

	publicationStatus := append(Schema{
		enum8("status", statusCodes...),
	}, publicationSet...)

	publicationVASet := Schema{
		u16("element_address"),
		blob("publish_address", 16),
		bits(2,
			pad(3),
			bf("credential_flag", 1),
			bf("app_key_index", 12),
		),
		ttl("ttl"),
		publishPeriod(),
		retransmitState("retransmit"),
		modelID("model"),
	}

	subscriptionAdd := Schema{
		u16("element_address"),
		u16("address"),
		modelID("model"),
	}

	subscriptionVAAdd := Schema{
		u16("element_address"),
		blob("label", 16),
		modelID("model"),
	}

	subscriptionStatus := Schema{
		enum8("status", statusCodes...),
		u16("element_address"),
		u16("address"),
		modelID("model"),
	}

	subscriptionDeleteAll := Schema{
		u16("element_address"),
		modelID("model"),
	}

	sigSubscriptionGet := Schema{
		u16("element_address"),
		sigModel(),
	}

	sigSubscriptionList := Schema{
		enum8("status", statusCodes...),
		u16("element_address"),
		sigModel(),
		list("addresses", u16("address")),
	}

	vendorSubscriptionGet := Schema{
		u16("element_address"),
		vendorModel(),
	}

	vendorSubscriptionList := Schema{
		enum8("status", statusCodes...),
		u16("element_address"),
		vendorModel(),
		list("addresses", u16("address")),
	}

	netKeyAdd := Schema{
		netKeyIndex(),
		blob("net_key", 16),
	}

	netKeyDelete := Schema{
		netKeyIndex(),
	}

	netKeyStatus := Schema{
		enum8("status", statusCodes...),
		netKeyIndex(),
	}

	netKeyList := Schema{
		keyIndices("net_key_indices"),
	}

	appKeyAdd := Schema{
		netAndAppKeyIndex(),
		blob("app_key", 16),
	}

	appKeyDelete := Schema{
		netAndAppKeyIndex(),
	}

	appKeyStatus := Schema{
		enum8("status", statusCodes...),
		netAndAppKeyIndex(),
	}

	appKeyGet := Schema{
		netKeyIndex(),
	}

	appKeyList := Schema{
		enum8("status", statusCodes...),
		netKeyIndex(),
		keyIndices("app_key_indices"),
	}

	nodeIdentityGet := Schema{
		netKeyIndex(),
	}

	nodeIdentitySet := Schema{
		netKeyIndex(),
		enum8("identity", NodeIdentityStopped, NodeIdentityRunning, NodeIdentityNotSupported),
	}

	nodeIdentityStatus := append(Schema{
		enum8("status", statusCodes...),
	}, nodeIdentitySet...)

	appBind := Schema{
		u16("element_address"),
		appKeyIndex(),
		modelID("model"),
	}

	appStatus := append(Schema{
		enum8("status", statusCodes...),
	}, appBind...)

	sigAppGet := Schema{
		u16("element_address"),
		sigModel(),
	}

	sigAppList := Schema{
		enum8("status", statusCodes...),
		u16("element_address"),
		sigModel(),
		keyIndices("app_key_indices"),
	}

	vendorAppGet := Schema{
		u16("element_address"),
		vendorModel(),
	}

	vendorAppList := Schema{
		enum8("status", statusCodes...),
		u16("element_address"),
		vendorModel(),
		keyIndices("app_key_indices"),
	}

	friendSet := Schema{
		enum8("friend", FriendDisabled, FriendEnabled, FriendNotSupported),
	}

	keyRefreshGet := Schema{
		netKeyIndex(),
	}

	keyRefreshSet := Schema{
		netKeyIndex(),
		enum8("transition", KeyRefreshTransitionSecond, KeyRefreshTransitionThird),
	}

	keyRefreshStatus := Schema{
		enum8("status", statusCodes...),
		netKeyIndex(),
		enum8("phase", KeyRefreshPhaseNormal, KeyRefreshPhaseFirst, KeyRefreshPhaseSecond),
	}

	heartbeatPublicationSet := Schema{
		u16("destination"),
		u8("count_log"),
		u8("period_log"),
		ttl("ttl"),
		u16("features"),
		netKeyIndex(),
	}

	heartbeatPublicationStatus := append(Schema{
		enum8("status", statusCodes...),
	}, heartbeatPublicationSet...)

	heartbeatSubscriptionSet := Schema{
		u16("source"),
		u16("destination"),
		u8("period_log"),
	}

	heartbeatSubscriptionStatus := append(append(Schema{
		enum8("status", statusCodes...),
	}, heartbeatSubscriptionSet...), Schema{
		u8("count_log"),
		u8max("min_hops", 0x7F),
		u8max("max_hops", 0x7F),
	}...)

	pollTimeoutGet := Schema{
		u16("lpn_address"),
	}

	pollTimeoutStatus := Schema{
		u16("lpn_address"),
		u24("poll_timeout"),
	}

	networkTransmitSet := Schema{
		bits(1,
			bf("interval_steps", 5),
			bf("count", 3),
		),
	}

	Register(OpConfigBeaconGet, "ConfigBeaconGet", Schema{})
	Register(OpConfigBeaconSet, "ConfigBeaconSet", beaconSet)
	Register(OpConfigBeaconStatus, "ConfigBeaconStatus", beaconSet)
	Register(OpConfigCompositionDataGet, "ConfigCompositionDataGet", compositionGet)
	Register(OpConfigCompositionDataStatus, "ConfigCompositionDataStatus", compositionStatus)
	Register(OpConfigDefaultTTLGet, "ConfigDefaultTTLGet", Schema{})
	Register(OpConfigDefaultTTLSet, "ConfigDefaultTTLSet", ttlSet)
	Register(OpConfigDefaultTTLStatus, "ConfigDefaultTTLStatus", ttlSet)
	Register(OpConfigGATTProxyGet, "ConfigGATTProxyGet", Schema{})
	Register(OpConfigGATTProxySet, "ConfigGATTProxySet", gattProxySet)
	Register(OpConfigGATTProxyStatus, "ConfigGATTProxyStatus", gattProxySet)
	Register(OpConfigRelayGet, "ConfigRelayGet", Schema{})
	Register(OpConfigRelaySet, "ConfigRelaySet", relaySet)
	Register(OpConfigRelayStatus, "ConfigRelayStatus", relaySet)
	Register(OpConfigModelPublicationGet, "ConfigModelPublicationGet", publicationGet)
	Register(OpConfigModelPublicationSet, "ConfigModelPublicationSet", publicationSet)
	Register(OpConfigModelPublicationStatus, "ConfigModelPublicationStatus", publicationStatus)
	Register(OpConfigModelPublicationVASet, "ConfigModelPublicationVASet", publicationVASet)
	Register(OpConfigModelSubscriptionAdd, "ConfigModelSubscriptionAdd", subscriptionAdd)
	Register(OpConfigModelSubscriptionDelete, "ConfigModelSubscriptionDelete", subscriptionAdd)
	Register(OpConfigModelSubscriptionOverwrite, "ConfigModelSubscriptionOverwrite", subscriptionAdd)
	Register(OpConfigModelSubscriptionVAAdd, "ConfigModelSubscriptionVAAdd", subscriptionVAAdd)
	Register(OpConfigModelSubscriptionVADelete, "ConfigModelSubscriptionVADelete", subscriptionVAAdd)
	Register(OpConfigModelSubscriptionVAOverwrite, "ConfigModelSubscriptionVAOverwrite", subscriptionVAAdd)
	Register(OpConfigModelSubscriptionStatus, "ConfigModelSubscriptionStatus", subscriptionStatus)
	Register(OpConfigModelSubscriptionDeleteAll, "ConfigModelSubscriptionDeleteAll", subscriptionDeleteAll)
	Register(OpConfigSIGModelSubscriptionGet, "ConfigSIGModelSubscriptionGet", sigSubscriptionGet)
	Register(OpConfigSIGModelSubscriptionList, "ConfigSIGModelSubscriptionList", sigSubscriptionList)
	Register(OpConfigVendorModelSubscriptionGet, "ConfigVendorModelSubscriptionGet", vendorSubscriptionGet)
	Register(OpConfigVendorModelSubscriptionList, "ConfigVendorModelSubscriptionList", vendorSubscriptionList)
	Register(OpConfigNetKeyAdd, "ConfigNetKeyAdd", netKeyAdd)
	Register(OpConfigNetKeyUpdate, "ConfigNetKeyUpdate", netKeyAdd)
	Register(OpConfigNetKeyDelete, "ConfigNetKeyDelete", netKeyDelete)
	Register(OpConfigNetKeyStatus, "ConfigNetKeyStatus", netKeyStatus)
	Register(OpConfigNetKeyGet, "ConfigNetKeyGet", Schema{})
	Register(OpConfigNetKeyList, "ConfigNetKeyList", netKeyList)
	Register(OpConfigAppKeyAdd, "ConfigAppKeyAdd", appKeyAdd)
	Register(OpConfigAppKeyUpdate, "ConfigAppKeyUpdate", appKeyAdd)
	Register(OpConfigAppKeyDelete, "ConfigAppKeyDelete", appKeyDelete)
	Register(OpConfigAppKeyStatus, "ConfigAppKeyStatus", appKeyStatus)
	Register(OpConfigAppKeyGet, "ConfigAppKeyGet", appKeyGet)
	Register(OpConfigAppKeyList, "ConfigAppKeyList", appKeyList)
	Register(OpConfigNodeIdentityGet, "ConfigNodeIdentityGet", nodeIdentityGet)
	Register(OpConfigNodeIdentitySet, "ConfigNodeIdentitySet", nodeIdentitySet)
	Register(OpConfigNodeIdentityStatus, "ConfigNodeIdentityStatus", nodeIdentityStatus)
	Register(OpConfigModelAppBind, "ConfigModelAppBind", appBind)
	Register(OpConfigModelAppUnbind, "ConfigModelAppUnbind", appBind)
	Register(OpConfigModelAppStatus, "ConfigModelAppStatus", appStatus)
	Register(OpConfigSIGModelAppGet, "ConfigSIGModelAppGet", sigAppGet)
	Register(OpConfigSIGModelAppList, "ConfigSIGModelAppList", sigAppList)
	Register(OpConfigVendorModelAppGet, "ConfigVendorModelAppGet", vendorAppGet)
	Register(OpConfigVendorModelAppList, "ConfigVendorModelAppList", vendorAppList)
	Register(OpConfigNodeReset, "ConfigNodeReset", Schema{})
	Register(OpConfigNodeResetStatus, "ConfigNodeResetStatus", Schema{})
	Register(OpConfigFriendGet, "ConfigFriendGet", Schema{})
	Register(OpConfigFriendSet, "ConfigFriendSet", friendSet)
	Register(OpConfigFriendStatus, "ConfigFriendStatus", friendSet)
	Register(OpConfigKeyRefreshPhaseGet, "ConfigKeyRefreshPhaseGet", keyRefreshGet)
	Register(OpConfigKeyRefreshPhaseSet, "ConfigKeyRefreshPhaseSet", keyRefreshSet)
	Register(OpConfigKeyRefreshPhaseStatus, "ConfigKeyRefreshPhaseStatus", keyRefreshStatus)
	Register(OpConfigHeartbeatPublicationGet, "ConfigHeartbeatPublicationGet", Schema{})
	Register(OpConfigHeartbeatPublicationSet, "ConfigHeartbeatPublicationSet", heartbeatPublicationSet)
	Register(OpConfigHeartbeatPublicationStatus, "ConfigHeartbeatPublicationStatus", heartbeatPublicationStatus)
	Register(OpConfigHeartbeatSubscriptionGet, "ConfigHeartbeatSubscriptionGet", Schema{})
	Register(OpConfigHeartbeatSubscriptionSet, "ConfigHeartbeatSubscriptionSet", heartbeatSubscriptionSet)
	Register(OpConfigHeartbeatSubscriptionStatus, "ConfigHeartbeatSubscriptionStatus", heartbeatSubscriptionStatus)
	Register(OpConfigLowPowerNodePollTimeoutGet, "ConfigLowPowerNodePollTimeoutGet", pollTimeoutGet)
	Register(OpConfigLowPowerNodePollTimeoutStatus, "ConfigLowPowerNodePollTimeoutStatus", pollTimeoutStatus)
	Register(OpConfigNetworkTransmitGet, "ConfigNetworkTransmitGet", Schema{})
	Register(OpConfigNetworkTransmitSet, "ConfigNetworkTransmitSet", networkTransmitSet)
	Register(OpConfigNetworkTransmitStatus, "ConfigNetworkTransmitStatus", networkTransmitSet)
}
