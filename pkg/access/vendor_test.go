package access

import "testing"

func TestSilvairDebugVectors(t *testing.T) {
	cases := []struct {
		name   string
		fields Values
		wire   string
	}{
		{
			name:   "rssi threshold get has no payload",
			fields: Values{"subopcode": uint64(DebugRSSIThresholdGet)},
			wire:   "F5360100",
		},
		{
			name: "rssi threshold set",
			fields: Values{
				"subopcode": uint64(DebugRSSIThresholdSet),
				"data":      map[string]interface{}{"rssi_threshold": uint64(0x80)},
			},
			wire: "F536010180",
		},
		{
			name: "radio test",
			fields: Values{
				"subopcode": uint64(DebugRadioTest),
				"data":      map[string]interface{}{"packet_counter": uint64(1)},
			},
			wire: "F536010301",
		},
		{
			name: "uptime status",
			fields: Values{
				"subopcode": uint64(DebugUptimeStatus),
				"data":      map[string]interface{}{"uptime": uint64(184482)},
			},
			wire: "F536010BA2D00200",
		},
		{
			name: "last software fault status",
			fields: Values{
				"subopcode": uint64(DebugLastSWFaultStatus),
				"data": map[string]interface{}{
					"time":  uint64(10),
					"fault": "Power OFF [7]",
				},
			},
			wire: "F536010E0A000000" + "506F776572204F4646205B375D",
		},
		{
			name: "IV index status",
			fields: Values{
				"subopcode": uint64(DebugIVIndexStatus),
				"data":      map[string]interface{}{"ivindex": uint64(0x04030201)},
			},
			wire: "F536011E01020304",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkRoundTrip(t, OpSilvairDebug, c.fields, c.wire)
		})
	}
}

func TestSilvairNDSVectors(t *testing.T) {
	t.Run("subscription set", func(t *testing.T) {
		checkRoundTrip(t, OpSilvairNDS, Values{
			"subopcode": uint64(NDSSubscriptionSet),
			"payload": map[string]interface{}{
				"destination": uint64(0x3412),
				"period":      uint64(0xAAAA),
			},
		}, "FC3601011234AAAA")
	})

	t.Run("subscription status with records", func(t *testing.T) {
		checkRoundTrip(t, OpSilvairNDS, Values{
			"subopcode": uint64(NDSSubscriptionStatus),
			"payload": map[string]interface{}{
				"destination":      uint64(0x3412),
				"period":           uint64(0xAAAA),
				"max_record_count": uint64(0x20),
				"records": []map[string]interface{}{
					{
						"source":   uint64(0x7856),
						"count":    uint64(0xBBBB),
						"min_hops": uint64(0),
						"max_hops": uint64(0),
					},
				},
			},
		}, "FC3601031234AAAA205678BBBB0000")
	})
}

func TestSilvairNDSSetupVectors(t *testing.T) {
	t.Run("publication set without features", func(t *testing.T) {
		checkRoundTrip(t, OpSilvairNDSSetup, Values{
			"subopcode": uint64(NDSPublicationSet),
			"payload": map[string]interface{}{
				"destination": uint64(0x3412),
				"count":       uint64(0xAAAA),
				"period": map[string]interface{}{
					"resolution": uint64(0b10),
					"steps":      uint64(0x02),
				},
				"ttl":           uint64(0x03),
				"net_key_index": uint64(0x0010),
			},
		}, "FD3601011234AAAA82031000")
	})

	t.Run("publication set with features", func(t *testing.T) {
		checkRoundTrip(t, OpSilvairNDSSetup, Values{
			"subopcode": uint64(NDSPublicationSet),
			"payload": map[string]interface{}{
				"destination": uint64(0x3412),
				"count":       uint64(0xAAAA),
				"period": map[string]interface{}{
					"resolution": uint64(0b10),
					"steps":      uint64(0x02),
				},
				"ttl":           uint64(0x03),
				"net_key_index": uint64(0x0010),
				"features":      uint64(0x0003),
			},
		}, "FD3601011234AAAA820310000300")
	})
}
