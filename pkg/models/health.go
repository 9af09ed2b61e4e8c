package models

import (
	"context"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
	"github.com/meshkit/btmesh/pkg/model"
	"github.com/pion/logging"
)

// FaultStatus is the registered fault state a Health Server reported.
type FaultStatus struct {
	TestID    uint8
	CompanyID uint16
	Faults    []uint8
}

// HealthClient drives Health Servers over application-key traffic
// (Mesh Profile 4.2).
type HealthClient struct {
	model    *model.Model
	interval time.Duration
	timeout  time.Duration
	log      logging.LeveledLogger
}

// HealthClientConfig configures a HealthClient.
type HealthClientConfig struct {
	// Model carries the traffic. Required.
	Model *model.Model

	// SendInterval is the query retransmission interval.
	// Defaults to DefaultSendInterval if zero.
	SendInterval time.Duration

	// Timeout bounds each acknowledged operation.
	// Defaults to DefaultTimeout if zero.
	Timeout time.Duration

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// NewHealthClient creates a HealthClient.
func NewHealthClient(config HealthClientConfig) *HealthClient {
	c := &HealthClient{
		model:    config.Model,
		interval: config.SendInterval,
		timeout:  config.Timeout,
	}
	if c.interval == 0 {
		c.interval = DefaultSendInterval
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	if config.LoggerFactory != nil {
		c.log = config.LoggerFactory.NewLogger("health-client")
	}
	return c
}

// GetFaults reads the registered fault state for one company identifier.
func (c *HealthClient) GetFaults(ctx context.Context, node, appIndex uint16, companyID uint16) (*FaultStatus, error) {
	src := node
	spec := model.QuerySpec{
		Destination: model.Unicast(node),
		KeyIndex:    appIndex,
		Request: model.Request(access.OpHealthFaultGet, access.Values{
			"company_id": companyID,
		}),
		Response: model.Criteria{
			Opcode: access.OpHealthFaultStatus,
			Source: &src,
			Filter: func(msg *access.Message) bool {
				return msg.Fields["company_id"] == uint64(companyID)
			},
		},
	}
	msg, err := c.model.Query(ctx, model.AppKey, spec, c.interval, c.timeout)
	if err != nil {
		return nil, err
	}

	testID, _ := msg.Fields["test_id"].(uint64)
	status := &FaultStatus{
		TestID:    uint8(testID),
		CompanyID: companyID,
	}
	if faults, ok := msg.Fields["fault_array"].([]uint64); ok {
		for _, f := range faults {
			status.Faults = append(status.Faults, uint8(f))
		}
	}
	return status, nil
}

// SetAttention sets a node's attention timer and returns the confirmed
// remaining seconds.
func (c *HealthClient) SetAttention(ctx context.Context, node, appIndex uint16, attention uint8) (uint8, error) {
	src := node
	spec := model.QuerySpec{
		Destination: model.Unicast(node),
		KeyIndex:    appIndex,
		Request: model.Request(access.OpHealthAttentionSet, access.Values{
			"attention": attention,
		}),
		Response: model.Criteria{
			Opcode: access.OpHealthAttentionStatus,
			Source: &src,
		},
	}
	msg, err := c.model.Query(ctx, model.AppKey, spec, c.interval, c.timeout)
	if err != nil {
		return 0, err
	}
	confirmed, _ := msg.Fields["attention"].(uint64)
	return uint8(confirmed), nil
}

// AttentionBulk sets the attention timer on many nodes under one shared
// deadline. The result always contains every node; nil marks success.
func (c *HealthClient) AttentionBulk(ctx context.Context, nodes []uint16, appIndex uint16,
	attention uint8, timeout time.Duration) map[uint16]error {

	if timeout == 0 {
		timeout = c.timeout
	}

	specs := make(map[uint16]model.QuerySpec, len(nodes))
	for _, node := range nodes {
		src := node
		specs[node] = model.QuerySpec{
			Destination: model.Unicast(node),
			KeyIndex:    appIndex,
			Request: model.Request(access.OpHealthAttentionSet, access.Values{
				"attention": attention,
			}),
			Response: model.Criteria{
				Opcode: access.OpHealthAttentionStatus,
				Source: &src,
			},
		}
	}

	results := model.BulkQuery(ctx, c.model, model.AppKey, specs, c.interval, timeout)

	out := make(map[uint16]error, len(results))
	for node, res := range results {
		out[node] = res.Err
	}
	return out
}
