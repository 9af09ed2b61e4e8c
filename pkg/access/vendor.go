package access

// Silvair vendor opcodes. The low 16 bits carry the company ID 0x0136.
const (
	OpSilvairDebug    Opcode = 0xF53601
	OpSilvairNDS      Opcode = 0xFC3601
	OpSilvairNDSSetup Opcode = 0xFD3601
)

// Debug subopcodes.
const (
	DebugRSSIThresholdGet            = 0x00
	DebugRSSIThresholdSet            = 0x01
	DebugRSSIThresholdStatus         = 0x02
	DebugRadioTest                   = 0x03
	DebugTimeslotTxPowerGet          = 0x04
	DebugTimeslotTxPowerSet          = 0x05
	DebugTimeslotTxPowerStatus       = 0x06
	DebugSoftdeviceTxPowerGet        = 0x07
	DebugSoftdeviceTxPowerSet        = 0x08
	DebugSoftdeviceTxPowerStatus     = 0x09
	DebugUptimeGet                   = 0x0A
	DebugUptimeStatus                = 0x0B
	DebugLastSWFaultGet              = 0x0C
	DebugLastSWFaultClear            = 0x0D
	DebugLastSWFaultStatus           = 0x0E
	DebugSystemStatsGet              = 0x0F
	DebugSystemStatsStatus           = 0x10
	DebugLastMallocFaultGet          = 0x11
	DebugLastMallocFaultClear        = 0x12
	DebugLastMallocFaultStatus       = 0x13
	DebugLastFDSFaultGet             = 0x14
	DebugLastFDSFaultClear           = 0x15
	DebugLastFDSFaultStatus          = 0x16
	DebugBytesBeforeGCGet            = 0x17
	DebugBytesBeforeGCStatus         = 0x18
	DebugProvisionedAppVersionGet    = 0x19
	DebugProvisionedAppVersionStatus = 0x1A
	DebugFullFirmwareVersionGet      = 0x1B
	DebugFullFirmwareVersionStatus   = 0x1C
	DebugIVIndexGet                  = 0x1D
	DebugIVIndexStatus               = 0x1E
	DebugGCCounterGet                = 0x1F
	DebugGCCounterStatus             = 0x20
	DebugArapListSizeGet             = 0x21
	DebugArapListSizeStatus          = 0x22
	DebugArapListContentGet          = 0x23
	DebugArapListContentStatus       = 0x24
)

// Network diagnostic server subopcodes.
const (
	NDSSubscriptionGet               = 0x00
	NDSSubscriptionSet               = 0x01
	NDSSubscriptionSetUnacknowledged = 0x02
	NDSSubscriptionStatus            = 0x03
	NDSRadioStatGet                  = 0x04
	NDSRadioStatSet                  = 0x05
	NDSRadioStatStatus               = 0x06
)

// Network diagnostic setup server subopcodes.
const (
	NDSPublicationGet    = 0x00
	NDSPublicationSet    = 0x01
	NDSPublicationStatus = 0x02
)

func init() {
	rssiThreshold := Schema{u8("rssi_threshold")}
	txPower := Schema{u8("tx_power")}
	lastFault := Schema{
		u32("time"),
		str("fault"),
	}

	debug := Schema{
		u8("subopcode"),
		switchOn("data", "subopcode", map[uint64]Schema{
			DebugRSSIThresholdSet:            rssiThreshold,
			DebugRSSIThresholdStatus:         rssiThreshold,
			DebugRadioTest:                   {u8("packet_counter")},
			DebugTimeslotTxPowerSet:          txPower,
			DebugTimeslotTxPowerStatus:       txPower,
			DebugSoftdeviceTxPowerSet:        txPower,
			DebugSoftdeviceTxPowerStatus:     txPower,
			DebugUptimeStatus:                {u32("uptime")},
			DebugLastSWFaultStatus:           lastFault,
			DebugSystemStatsStatus:           {tail("raw")},
			DebugLastMallocFaultStatus:       lastFault,
			DebugLastFDSFaultStatus:          lastFault,
			DebugBytesBeforeGCStatus:         {u16("bytes_left")},
			DebugProvisionedAppVersionStatus: {u16("version")},
			DebugFullFirmwareVersionStatus:   {str("version")},
			DebugIVIndexStatus:               {u32("ivindex")},
			DebugGCCounterStatus:             {u16("counter")},
			DebugArapListSizeStatus:          {tail("raw")},
			DebugArapListContentGet:          {u8("page")},
			DebugArapListContentStatus:       {tail("raw")},
		}),
	}

	registryRecord := structf("record",
		u16("source"),
		u16("count"),
		u8max("min_hops", 0x7F),
		u8max("max_hops", 0x7F),
	)

	subscriptionSet := Schema{
		u16("destination"),
		u16("period"),
	}

	subscriptionStatus := Schema{
		u16("destination"),
		u16("period"),
		u8("max_record_count"),
		list("records", registryRecord),
	}

	nds := Schema{
		u8("subopcode"),
		switchOn("payload", "subopcode", map[uint64]Schema{
			NDSSubscriptionSet:               subscriptionSet,
			NDSSubscriptionSetUnacknowledged: subscriptionSet,
			NDSSubscriptionStatus:            subscriptionStatus,
		}),
	}

	publicationSet := Schema{
		u16("destination"),
		u16("count"),
		transitionTime("period"),
		ttl("ttl"),
		u16max("net_key_index", 0xFFF),
		optional(u16max("features", 3)),
	}

	ndsSetup := Schema{
		u8("subopcode"),
		switchOn("payload", "subopcode", map[uint64]Schema{
			NDSPublicationSet:    publicationSet,
			NDSPublicationStatus: publicationSet,
		}),
	}

	Register(OpSilvairDebug, "SilvairDebug", debug)
	Register(OpSilvairNDS, "SilvairNDS", nds)
	Register(OpSilvairNDSSetup, "SilvairNDSSetup", ndsSetup)
}
