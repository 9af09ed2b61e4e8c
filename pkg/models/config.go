package models

import (
	"context"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
	"github.com/meshkit/btmesh/pkg/model"
	"github.com/pion/logging"
)

// ConfigClient drives the foundation Configuration Server of remote nodes
// over device-key traffic (Mesh Profile 4.4.1). The key index passed on
// each call selects the network key the device-key message travels under.
type ConfigClient struct {
	model    *model.Model
	interval time.Duration
	timeout  time.Duration
	log      logging.LeveledLogger
}

// ConfigClientConfig configures a ConfigClient.
type ConfigClientConfig struct {
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

// NewConfigClient creates a ConfigClient.
func NewConfigClient(config ConfigClientConfig) *ConfigClient {
	c := &ConfigClient{
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
		c.log = config.LoggerFactory.NewLogger("config-client")
	}
	return c
}

func (c *ConfigClient) query(ctx context.Context, node, netIndex uint16,
	op access.Opcode, params access.Values, crit model.Criteria) (*access.Message, error) {

	src := node
	crit.Source = &src
	spec := model.QuerySpec{
		Destination: model.Unicast(node),
		KeyIndex:    netIndex,
		Request:     model.Request(op, params),
		Response:    crit,
	}
	return c.model.Query(ctx, model.DevKey, spec, c.interval, c.timeout)
}

// checkStatus maps a non-success status field to a StatusError.
func checkStatus(op string, msg *access.Message) error {
	code, _ := msg.Fields["status"].(uint64)
	if code != access.StatusSuccess {
		return &StatusError{Op: op, Code: code}
	}
	return nil
}

// GetCompositionData reads one composition data page. The returned fields
// hold the page number and, for page 0, the parsed element list.
func (c *ConfigClient) GetCompositionData(ctx context.Context, node, netIndex uint16, page uint8) (access.Values, error) {
	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigCompositionDataGet, access.Values{"page": page},
		model.Criteria{Opcode: access.OpConfigCompositionDataStatus})
	if err != nil {
		return nil, err
	}
	return msg.Fields, nil
}

// AddAppKey distributes an application key to a node and binds it to the
// given network key.
func (c *ConfigClient) AddAppKey(ctx context.Context, node, netIndex uint16,
	netKeyIndex, appKeyIndex uint16, appKey []byte) error {

	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigAppKeyAdd, access.Values{
			"net_key_index": netKeyIndex,
			"app_key_index": appKeyIndex,
			"app_key":       appKey,
		},
		model.Criteria{
			Opcode: access.OpConfigAppKeyStatus,
			Filter: keyIndexFilter(netKeyIndex, appKeyIndex),
		})
	if err != nil {
		return err
	}
	return checkStatus("AppKeyAdd", msg)
}

// DeleteAppKey removes an application key from a node.
func (c *ConfigClient) DeleteAppKey(ctx context.Context, node, netIndex uint16,
	netKeyIndex, appKeyIndex uint16) error {

	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigAppKeyDelete, access.Values{
			"net_key_index": netKeyIndex,
			"app_key_index": appKeyIndex,
		},
		model.Criteria{
			Opcode: access.OpConfigAppKeyStatus,
			Filter: keyIndexFilter(netKeyIndex, appKeyIndex),
		})
	if err != nil {
		return err
	}
	return checkStatus("AppKeyDelete", msg)
}

// BindAppKey binds an application key to a model on an element.
func (c *ConfigClient) BindAppKey(ctx context.Context, node, netIndex uint16,
	elementAddress, appKeyIndex uint16, mid ModelID) error {

	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigModelAppBind, access.Values{
			"element_address": elementAddress,
			"app_key_index":   appKeyIndex,
			"model":           mid.fields(),
		},
		model.Criteria{
			Opcode: access.OpConfigModelAppStatus,
			Filter: func(msg *access.Message) bool {
				return msg.Fields["element_address"] == uint64(elementAddress) &&
					mid.matches(msg.Fields["model"])
			},
		})
	if err != nil {
		return err
	}
	return checkStatus("ModelAppBind", msg)
}

// AddSubscription adds a group address to a model's subscription list.
func (c *ConfigClient) AddSubscription(ctx context.Context, node, netIndex uint16,
	elementAddress, address uint16, mid ModelID) error {
	return c.subscriptionOp(ctx, "ModelSubscriptionAdd",
		access.OpConfigModelSubscriptionAdd, node, netIndex, elementAddress, address, mid)
}

// DeleteSubscription removes a group address from a model's subscription
// list.
func (c *ConfigClient) DeleteSubscription(ctx context.Context, node, netIndex uint16,
	elementAddress, address uint16, mid ModelID) error {
	return c.subscriptionOp(ctx, "ModelSubscriptionDelete",
		access.OpConfigModelSubscriptionDelete, node, netIndex, elementAddress, address, mid)
}

func (c *ConfigClient) subscriptionOp(ctx context.Context, name string, op access.Opcode,
	node, netIndex uint16, elementAddress, address uint16, mid ModelID) error {

	msg, err := c.query(ctx, node, netIndex,
		op, access.Values{
			"element_address": elementAddress,
			"address":         address,
			"model":           mid.fields(),
		},
		model.Criteria{
			Opcode: access.OpConfigModelSubscriptionStatus,
			Filter: func(msg *access.Message) bool {
				return msg.Fields["element_address"] == uint64(elementAddress) &&
					msg.Fields["address"] == uint64(address) &&
					mid.matches(msg.Fields["model"])
			},
		})
	if err != nil {
		return err
	}
	return checkStatus(name, msg)
}

// GetDefaultTTL reads a node's default TTL.
func (c *ConfigClient) GetDefaultTTL(ctx context.Context, node, netIndex uint16) (uint8, error) {
	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigDefaultTTLGet, access.Values{},
		model.Criteria{Opcode: access.OpConfigDefaultTTLStatus})
	if err != nil {
		return 0, err
	}
	ttl, _ := msg.Fields["ttl"].(uint64)
	return uint8(ttl), nil
}

// SetDefaultTTL writes a node's default TTL and returns the value the node
// confirmed.
func (c *ConfigClient) SetDefaultTTL(ctx context.Context, node, netIndex uint16, ttl uint8) (uint8, error) {
	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigDefaultTTLSet, access.Values{"ttl": ttl},
		model.Criteria{Opcode: access.OpConfigDefaultTTLStatus})
	if err != nil {
		return 0, err
	}
	confirmed, _ := msg.Fields["ttl"].(uint64)
	return uint8(confirmed), nil
}

// SetNetworkTransmit configures a node's network transmit state: count
// retransmissions at (intervalSteps+1)*10ms spacing. Returns the confirmed
// count and interval steps.
func (c *ConfigClient) SetNetworkTransmit(ctx context.Context, node, netIndex uint16,
	count, intervalSteps uint8) (uint8, uint8, error) {

	msg, err := c.query(ctx, node, netIndex,
		access.OpConfigNetworkTransmitSet, access.Values{
			"count":          count,
			"interval_steps": intervalSteps,
		},
		model.Criteria{Opcode: access.OpConfigNetworkTransmitStatus})
	if err != nil {
		return 0, 0, err
	}
	gotCount, _ := msg.Fields["count"].(uint64)
	gotSteps, _ := msg.Fields["interval_steps"].(uint64)
	return uint8(gotCount), uint8(gotSteps), nil
}

// NodeReset asks a node to remove itself from the network.
func (c *ConfigClient) NodeReset(ctx context.Context, node, netIndex uint16) error {
	_, err := c.query(ctx, node, netIndex,
		access.OpConfigNodeReset, access.Values{},
		model.Criteria{Opcode: access.OpConfigNodeResetStatus})
	return err
}

// AddAppKeyBulk distributes one application key to many nodes under a
// single shared deadline. The result always contains every node; nil marks
// success.
func (c *ConfigClient) AddAppKeyBulk(ctx context.Context, nodes []uint16, netIndex uint16,
	netKeyIndex, appKeyIndex uint16, appKey []byte, timeout time.Duration) map[uint16]error {

	specs := make(map[uint16]model.QuerySpec, len(nodes))
	for _, node := range nodes {
		src := node
		specs[node] = model.QuerySpec{
			Destination: model.Unicast(node),
			KeyIndex:    netIndex,
			Request: model.Request(access.OpConfigAppKeyAdd, access.Values{
				"net_key_index": netKeyIndex,
				"app_key_index": appKeyIndex,
				"app_key":       appKey,
			}),
			Response: model.Criteria{
				Opcode: access.OpConfigAppKeyStatus,
				Source: &src,
				Filter: keyIndexFilter(netKeyIndex, appKeyIndex),
			},
		}
	}
	return c.bulk(ctx, "AppKeyAdd", specs, timeout)
}

// BindAppKeyBulk binds an application key to the same model on many nodes
// under a single shared deadline.
func (c *ConfigClient) BindAppKeyBulk(ctx context.Context, nodes []uint16, netIndex uint16,
	elementOffset, appKeyIndex uint16, mid ModelID, timeout time.Duration) map[uint16]error {

	specs := make(map[uint16]model.QuerySpec, len(nodes))
	for _, node := range nodes {
		src := node
		element := node + elementOffset
		specs[node] = model.QuerySpec{
			Destination: model.Unicast(node),
			KeyIndex:    netIndex,
			Request: model.Request(access.OpConfigModelAppBind, access.Values{
				"element_address": element,
				"app_key_index":   appKeyIndex,
				"model":           mid.fields(),
			}),
			Response: model.Criteria{
				Opcode: access.OpConfigModelAppStatus,
				Source: &src,
				Filter: func(msg *access.Message) bool {
					return msg.Fields["element_address"] == uint64(element) &&
						mid.matches(msg.Fields["model"])
				},
			},
		}
	}
	return c.bulk(ctx, "ModelAppBind", specs, timeout)
}

func (c *ConfigClient) bulk(ctx context.Context, op string,
	specs map[uint16]model.QuerySpec, timeout time.Duration) map[uint16]error {

	if timeout == 0 {
		timeout = c.timeout
	}
	results := model.BulkQuery(ctx, c.model, model.DevKey, specs, c.interval, timeout)

	out := make(map[uint16]error, len(results))
	for node, res := range results {
		if res.Err != nil {
			out[node] = res.Err
			continue
		}
		out[node] = checkStatus(op, res.Msg)
	}
	return out
}

func keyIndexFilter(netKeyIndex, appKeyIndex uint16) func(*access.Message) bool {
	return func(msg *access.Message) bool {
		return msg.Fields["net_key_index"] == uint64(netKeyIndex) &&
			msg.Fields["app_key_index"] == uint64(appKeyIndex)
	}
}
