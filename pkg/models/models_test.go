package models

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
	"github.com/meshkit/btmesh/pkg/model"
)

// fakeNode emulates a remote mesh node: it decodes whatever the client
// sends and answers the way the corresponding server model would.
type fakeNode struct {
	addr uint16

	mu        sync.Mutex
	ttl       uint64
	onOff     uint64
	attention uint64
	faults    []uint64

	// appKeyStatus overrides the status code of app key operations.
	appKeyStatus uint64

	// silent drops every request.
	silent bool

	sent []*access.Message
}

func (n *fakeNode) handle(t *testing.T, m *model.Model, out model.Outbound) {
	msg, err := access.Decode(out.Payload)
	if err != nil {
		t.Errorf("node %04x: undecodable request: %v", n.addr, err)
		return
	}

	n.mu.Lock()
	n.sent = append(n.sent, msg)
	silent := n.silent
	n.mu.Unlock()
	if silent {
		return
	}

	var (
		op     access.Opcode
		fields access.Values
	)
	switch msg.Opcode {
	case access.OpConfigAppKeyAdd, access.OpConfigAppKeyDelete:
		op = access.OpConfigAppKeyStatus
		fields = access.Values{
			"status":        n.appKeyStatus,
			"net_key_index": msg.Fields["net_key_index"],
			"app_key_index": msg.Fields["app_key_index"],
		}
	case access.OpConfigModelAppBind:
		op = access.OpConfigModelAppStatus
		fields = access.Values{
			"status":          uint64(access.StatusSuccess),
			"element_address": msg.Fields["element_address"],
			"app_key_index":   msg.Fields["app_key_index"],
			"model":           msg.Fields["model"],
		}
	case access.OpConfigModelSubscriptionAdd, access.OpConfigModelSubscriptionDelete:
		op = access.OpConfigModelSubscriptionStatus
		fields = access.Values{
			"status":          uint64(access.StatusSuccess),
			"element_address": msg.Fields["element_address"],
			"address":         msg.Fields["address"],
			"model":           msg.Fields["model"],
		}
	case access.OpConfigCompositionDataGet:
		op = access.OpConfigCompositionDataStatus
		fields = access.Values{
			"page": uint64(0),
			"data": map[string]interface{}{
				"cid":      uint64(0x0136),
				"pid":      uint64(0xCAFE),
				"vid":      uint64(0xBEEF),
				"crpl":     uint64(0x000B),
				"features": uint64(0x0000),
				"elements": []map[string]interface{}{
					{
						"location":      uint64(0x0100),
						"sig_number":    uint64(1),
						"vendor_number": uint64(0),
						"sig_models":    []map[string]interface{}{{"model_id": uint64(0x1000)}},
						"vendor_models": []map[string]interface{}{},
					},
				},
			},
		}
	case access.OpConfigDefaultTTLGet:
		op = access.OpConfigDefaultTTLStatus
		fields = access.Values{"ttl": n.ttl}
	case access.OpConfigDefaultTTLSet:
		n.mu.Lock()
		n.ttl, _ = msg.Fields["ttl"].(uint64)
		n.mu.Unlock()
		op = access.OpConfigDefaultTTLStatus
		fields = access.Values{"ttl": msg.Fields["ttl"]}
	case access.OpConfigNetworkTransmitSet:
		op = access.OpConfigNetworkTransmitStatus
		fields = access.Values{
			"count":          msg.Fields["count"],
			"interval_steps": msg.Fields["interval_steps"],
		}
	case access.OpConfigNodeReset:
		op = access.OpConfigNodeResetStatus
		fields = access.Values{}
	case access.OpGenericOnOffGet:
		op = access.OpGenericOnOffStatus
		fields = access.Values{"present_onoff": n.onOff}
	case access.OpGenericOnOffSet:
		n.mu.Lock()
		n.onOff, _ = msg.Fields["onoff"].(uint64)
		n.mu.Unlock()
		op = access.OpGenericOnOffStatus
		fields = access.Values{"present_onoff": msg.Fields["onoff"]}
	case access.OpGenericOnOffSetUnacknowledged:
		n.mu.Lock()
		n.onOff, _ = msg.Fields["onoff"].(uint64)
		n.mu.Unlock()
		return
	case access.OpHealthFaultGet:
		op = access.OpHealthFaultStatus
		fields = access.Values{
			"test_id":     uint64(1),
			"company_id":  msg.Fields["company_id"],
			"fault_array": n.faults,
		}
	case access.OpHealthAttentionSet:
		n.mu.Lock()
		n.attention, _ = msg.Fields["attention"].(uint64)
		n.mu.Unlock()
		op = access.OpHealthAttentionStatus
		fields = access.Values{"attention": msg.Fields["attention"]}
	default:
		t.Errorf("node %04x: unexpected request %s", n.addr, msg.Name)
		return
	}

	payload, err := access.Encode(op, fields)
	if err != nil {
		t.Errorf("node %04x: response encode failed: %v", n.addr, err)
		return
	}
	go m.Receive(out.Context, n.addr, model.Unicast(0x0001), out.KeyIndex, payload)
}

func (n *fakeNode) requests() []*access.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*access.Message, len(n.sent))
	copy(out, n.sent)
	return out
}

// meshSender routes outbound messages to fake nodes by destination.
type meshSender struct {
	t     *testing.T
	m     *model.Model
	nodes map[uint16]*fakeNode
}

func (s *meshSender) Send(_ context.Context, out model.Outbound) error {
	node, ok := s.nodes[out.Destination.Address]
	if !ok {
		return nil
	}
	node.handle(s.t, s.m, out)
	return nil
}

// newTestMesh wires a client-side model to the given fake nodes.
func newTestMesh(t *testing.T, nodes ...*fakeNode) *model.Model {
	sender := &meshSender{t: t, nodes: make(map[uint16]*fakeNode)}
	for _, n := range nodes {
		sender.nodes[n.addr] = n
	}
	m := model.New(model.Config{Sender: sender})
	sender.m = m
	return m
}

func TestConfigClientAppKey(t *testing.T) {
	node := &fakeNode{addr: 0x0010}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	appKey := make([]byte, 16)
	err := c.AddAppKey(context.Background(), 0x0010, 0, 0, 1, appKey)
	if err != nil {
		t.Fatalf("AddAppKey failed: %v", err)
	}

	if err := c.DeleteAppKey(context.Background(), 0x0010, 0, 0, 1); err != nil {
		t.Fatalf("DeleteAppKey failed: %v", err)
	}
}

func TestConfigClientStatusError(t *testing.T) {
	node := &fakeNode{addr: 0x0010, appKeyStatus: access.StatusInvalidAppKeyIndex}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	err := c.AddAppKey(context.Background(), 0x0010, 0, 0, 1, make([]byte, 16))
	if !errors.Is(err, ErrOperationFailed) {
		t.Fatalf("AddAppKey error = %v, want ErrOperationFailed", err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("AddAppKey error = %v, want *StatusError", err)
	}
	if statusErr.Code != access.StatusInvalidAppKeyIndex {
		t.Errorf("status = %#02x, want invalid app key index", statusErr.Code)
	}
}

func TestConfigClientBindAndSubscribe(t *testing.T) {
	node := &fakeNode{addr: 0x0010}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	mid := SIGModel(0x1000)
	if err := c.BindAppKey(context.Background(), 0x0010, 0, 0x0010, 1, mid); err != nil {
		t.Fatalf("BindAppKey failed: %v", err)
	}
	if err := c.AddSubscription(context.Background(), 0x0010, 0, 0x0010, 0xC001, mid); err != nil {
		t.Fatalf("AddSubscription failed: %v", err)
	}
	if err := c.DeleteSubscription(context.Background(), 0x0010, 0, 0x0010, 0xC001, mid); err != nil {
		t.Fatalf("DeleteSubscription failed: %v", err)
	}

	vendor := VendorModel(0x0136, 0x0001)
	if err := c.BindAppKey(context.Background(), 0x0010, 0, 0x0010, 1, vendor); err != nil {
		t.Fatalf("BindAppKey (vendor) failed: %v", err)
	}
}

func TestConfigClientCompositionData(t *testing.T) {
	node := &fakeNode{addr: 0x0010}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	fields, err := c.GetCompositionData(context.Background(), 0x0010, 0, 0)
	if err != nil {
		t.Fatalf("GetCompositionData failed: %v", err)
	}
	if fields["page"] != uint64(0) {
		t.Errorf("page = %v, want 0", fields["page"])
	}
	data, ok := fields["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want map", fields["data"])
	}
	if data["cid"] != uint64(0x0136) {
		t.Errorf("cid = %v, want 0x0136", data["cid"])
	}
	elements, ok := data["elements"].([]map[string]interface{})
	if !ok || len(elements) != 1 {
		t.Fatalf("elements = %v, want one element", data["elements"])
	}
	sigModels, _ := elements[0]["sig_models"].([]map[string]interface{})
	if len(sigModels) != 1 || sigModels[0]["model_id"] != uint64(0x1000) {
		t.Errorf("sig_models = %v, want [{model_id: 0x1000}]", sigModels)
	}
}

func TestConfigClientDefaultTTL(t *testing.T) {
	node := &fakeNode{addr: 0x0010, ttl: 7}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	got, err := c.GetDefaultTTL(context.Background(), 0x0010, 0)
	if err != nil {
		t.Fatalf("GetDefaultTTL failed: %v", err)
	}
	if got != 7 {
		t.Errorf("ttl = %d, want 7", got)
	}

	confirmed, err := c.SetDefaultTTL(context.Background(), 0x0010, 0, 5)
	if err != nil {
		t.Fatalf("SetDefaultTTL failed: %v", err)
	}
	if confirmed != 5 {
		t.Errorf("confirmed ttl = %d, want 5", confirmed)
	}
}

func TestConfigClientNetworkTransmit(t *testing.T) {
	node := &fakeNode{addr: 0x0010}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	count, steps, err := c.SetNetworkTransmit(context.Background(), 0x0010, 0, 2, 5)
	if err != nil {
		t.Fatalf("SetNetworkTransmit failed: %v", err)
	}
	if count != 2 || steps != 5 {
		t.Errorf("confirmed = (%d, %d), want (2, 5)", count, steps)
	}
}

func TestConfigClientNodeReset(t *testing.T) {
	node := &fakeNode{addr: 0x0010}
	c := NewConfigClient(ConfigClientConfig{Model: newTestMesh(t, node)})

	if err := c.NodeReset(context.Background(), 0x0010, 0); err != nil {
		t.Fatalf("NodeReset failed: %v", err)
	}
}

func TestConfigClientAddAppKeyBulk(t *testing.T) {
	answering := &fakeNode{addr: 0x0010}
	silent := &fakeNode{addr: 0x0011, silent: true}
	c := NewConfigClient(ConfigClientConfig{
		Model:        newTestMesh(t, answering, silent),
		SendInterval: 50 * time.Millisecond,
	})

	results := c.AddAppKeyBulk(context.Background(), []uint16{0x0010, 0x0011}, 0,
		0, 1, make([]byte, 16), 200*time.Millisecond)

	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	if results[0x0010] != nil {
		t.Errorf("answering node: %v, want success", results[0x0010])
	}
	if !errors.Is(results[0x0011], model.ErrTimeout) {
		t.Errorf("silent node: %v, want ErrTimeout", results[0x0011])
	}
}

func TestOnOffClientSetAndGet(t *testing.T) {
	node := &fakeNode{addr: 0x0020}
	c := NewGenericOnOffClient(GenericOnOffClientConfig{Model: newTestMesh(t, node)})

	present, err := c.SetOnOff(context.Background(), 0x0020, 1, true)
	if err != nil {
		t.Fatalf("SetOnOff failed: %v", err)
	}
	if !present {
		t.Error("SetOnOff reported off, want on")
	}

	got, err := c.GetOnOff(context.Background(), 0x0020, 1)
	if err != nil {
		t.Fatalf("GetOnOff failed: %v", err)
	}
	if !got {
		t.Error("GetOnOff = off, want on")
	}
}

func TestOnOffClientUnacknowledged(t *testing.T) {
	node := &fakeNode{addr: 0x0020}
	c := NewGenericOnOffClient(GenericOnOffClientConfig{
		Model:        newTestMesh(t, node),
		SendInterval: 20 * time.Millisecond,
	})

	err := c.SetOnOffUnacknowledged(context.Background(), 0x0020, 1, true,
		3, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("SetOnOffUnacknowledged failed: %v", err)
	}

	reqs := node.requests()
	if len(reqs) != 3 {
		t.Fatalf("requests = %d, want 3", len(reqs))
	}

	tid := reqs[0].Fields["tid"]
	var prevDelay uint64 = ^uint64(0)
	for i, req := range reqs {
		if req.Opcode != access.OpGenericOnOffSetUnacknowledged {
			t.Fatalf("request %d opcode = %v", i, req.Opcode)
		}
		if req.Fields["tid"] != tid {
			t.Errorf("request %d tid = %v, want %v", i, req.Fields["tid"], tid)
		}
		delay, _ := req.Fields["delay"].(uint64)
		if delay >= prevDelay {
			t.Errorf("request %d delay = %d, want shrinking delays", i, delay)
		}
		prevDelay = delay
	}
}

func TestHealthClientFaults(t *testing.T) {
	node := &fakeNode{addr: 0x0030, faults: []uint64{0x01, 0x15}}
	c := NewHealthClient(HealthClientConfig{Model: newTestMesh(t, node)})

	status, err := c.GetFaults(context.Background(), 0x0030, 1, 0x0136)
	if err != nil {
		t.Fatalf("GetFaults failed: %v", err)
	}
	if status.CompanyID != 0x0136 {
		t.Errorf("company = %#04x, want 0x0136", status.CompanyID)
	}
	if len(status.Faults) != 2 || status.Faults[0] != 0x01 || status.Faults[1] != 0x15 {
		t.Errorf("faults = %v, want [1 21]", status.Faults)
	}
}

func TestHealthClientAttention(t *testing.T) {
	node := &fakeNode{addr: 0x0030}
	c := NewHealthClient(HealthClientConfig{Model: newTestMesh(t, node)})

	confirmed, err := c.SetAttention(context.Background(), 0x0030, 1, 10)
	if err != nil {
		t.Fatalf("SetAttention failed: %v", err)
	}
	if confirmed != 10 {
		t.Errorf("attention = %d, want 10", confirmed)
	}
}

func TestHealthClientAttentionBulk(t *testing.T) {
	a := &fakeNode{addr: 0x0030}
	b := &fakeNode{addr: 0x0031}
	c := NewHealthClient(HealthClientConfig{
		Model:        newTestMesh(t, a, b),
		SendInterval: 50 * time.Millisecond,
	})

	results := c.AttentionBulk(context.Background(), []uint16{0x0030, 0x0031}, 1,
		5, time.Second)
	for node, err := range results {
		if err != nil {
			t.Errorf("node %04x: %v", node, err)
		}
	}
}
