package models

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
	"github.com/meshkit/btmesh/pkg/model"
	"github.com/pion/logging"
)

// GenericOnOffClient drives Generic OnOff Servers over application-key
// traffic (Mesh Model 3.2.1).
type GenericOnOffClient struct {
	model    *model.Model
	interval time.Duration
	timeout  time.Duration
	log      logging.LeveledLogger

	tid atomic.Uint32
}

// GenericOnOffClientConfig configures a GenericOnOffClient.
type GenericOnOffClientConfig struct {
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

// NewGenericOnOffClient creates a GenericOnOffClient.
func NewGenericOnOffClient(config GenericOnOffClientConfig) *GenericOnOffClient {
	c := &GenericOnOffClient{
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
		c.log = config.LoggerFactory.NewLogger("onoff-client")
	}
	return c
}

// nextTID returns a fresh transaction identifier.
func (c *GenericOnOffClient) nextTID() uint8 {
	return uint8(c.tid.Add(1))
}

// GetOnOff reads the present on/off state of a node.
func (c *GenericOnOffClient) GetOnOff(ctx context.Context, node, appIndex uint16) (bool, error) {
	src := node
	spec := model.QuerySpec{
		Destination: model.Unicast(node),
		KeyIndex:    appIndex,
		Request:     model.Request(access.OpGenericOnOffGet, access.Values{}),
		Response: model.Criteria{
			Opcode: access.OpGenericOnOffStatus,
			Source: &src,
		},
	}
	msg, err := c.model.Query(ctx, model.AppKey, spec, c.interval, c.timeout)
	if err != nil {
		return false, err
	}
	present, _ := msg.Fields["present_onoff"].(uint64)
	return present != 0, nil
}

// SetOnOff sets the on/off state of a node and waits for the status
// response. Returns the present state the node reported.
func (c *GenericOnOffClient) SetOnOff(ctx context.Context, node, appIndex uint16, onOff bool) (bool, error) {
	var value uint64
	if onOff {
		value = 1
	}
	src := node
	spec := model.QuerySpec{
		Destination: model.Unicast(node),
		KeyIndex:    appIndex,
		Request: model.Request(access.OpGenericOnOffSet, access.Values{
			"onoff": value,
			"tid":   c.nextTID(),
		}),
		Response: model.Criteria{
			Opcode: access.OpGenericOnOffStatus,
			Source: &src,
		},
	}
	msg, err := c.model.Query(ctx, model.AppKey, spec, c.interval, c.timeout)
	if err != nil {
		return false, err
	}
	present, _ := msg.Fields["present_onoff"].(uint64)
	return present != 0, nil
}

// SetOnOffUnacknowledged sends a bounded burst of unacknowledged set
// messages sharing one transaction identifier. The delay field starts at
// initialDelay and shrinks by the send interval on every attempt, so each
// retransmission targets the same execution instant (Mesh Model 3.3.1.2.2).
func (c *GenericOnOffClient) SetOnOffUnacknowledged(ctx context.Context, node, appIndex uint16,
	onOff bool, retransmissions int, initialDelay time.Duration) error {

	var value uint64
	if onOff {
		value = 1
	}
	tid := c.nextTID()
	delay := initialDelay

	for i := 0; i < retransmissions; i++ {
		err := c.model.Send(ctx, model.AppKey, model.Unicast(node), appIndex,
			access.OpGenericOnOffSetUnacknowledged, access.Values{
				"onoff":           value,
				"tid":             tid,
				"transition_time": map[string]interface{}{"resolution": 0, "steps": 0},
				"delay":           access.DelaySteps(delay),
			})
		if err != nil {
			return err
		}

		if i == retransmissions-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.interval):
		}
		if delay > c.interval {
			delay -= c.interval
		} else {
			delay = 0
		}
	}
	return nil
}
