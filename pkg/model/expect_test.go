package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/meshkit/btmesh/pkg/access"
)

func TestExpectResolves(t *testing.T) {
	m := New(Config{})

	exp := m.Expect(AppKey, Criteria{
		Opcode: access.OpGenericOnOffStatus,
		Source: u16ptr(0x0005),
	})

	m.Receive(AppKey, 0x0005, Unicast(0x0001), 0, onOffStatus(t, 1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, err := exp.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if msg.Opcode != access.OpGenericOnOffStatus {
		t.Errorf("opcode = %v, want GenericOnOffStatus", msg.Opcode)
	}
	if got := msg.Fields["present_onoff"]; got != uint64(1) {
		t.Errorf("present_onoff = %v, want 1", got)
	}
}

func TestExpectSingleShot(t *testing.T) {
	m := New(Config{})

	crit := Criteria{Opcode: access.OpGenericOnOffStatus}
	first := m.Expect(AppKey, crit)
	second := m.Expect(AppKey, crit)

	m.Receive(AppKey, 0x0005, Unicast(0x0001), 0, onOffStatus(t, 1))

	select {
	case <-first.done:
	default:
		t.Fatal("first expectation did not resolve")
	}
	select {
	case <-second.done:
		t.Fatal("one message resolved both expectations")
	default:
	}

	// A second message resolves the remaining waiter.
	m.Receive(AppKey, 0x0005, Unicast(0x0001), 0, onOffStatus(t, 0))
	select {
	case <-second.done:
	default:
		t.Fatal("second expectation did not resolve on the second message")
	}
}

func TestExpectCriteria(t *testing.T) {
	m := New(Config{})

	cases := []struct {
		name string
		crit Criteria
		want bool
	}{
		{"opcode only", Criteria{Opcode: access.OpGenericOnOffStatus}, true},
		{"wrong opcode", Criteria{Opcode: access.OpGenericLevelStatus}, false},
		{"source match", Criteria{Opcode: access.OpGenericOnOffStatus, Source: u16ptr(0x0005)}, true},
		{"source mismatch", Criteria{Opcode: access.OpGenericOnOffStatus, Source: u16ptr(0x0006)}, false},
		{"key index mismatch", Criteria{Opcode: access.OpGenericOnOffStatus, KeyIndex: u16ptr(7)}, false},
		{
			"filter match",
			Criteria{
				Opcode: access.OpGenericOnOffStatus,
				Filter: func(msg *access.Message) bool {
					return msg.Fields["present_onoff"] == uint64(1)
				},
			},
			true,
		},
		{
			"filter mismatch",
			Criteria{
				Opcode: access.OpGenericOnOffStatus,
				Filter: func(msg *access.Message) bool {
					return msg.Fields["present_onoff"] == uint64(0)
				},
			},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exp := m.Expect(AppKey, tc.crit)
			defer exp.Cancel()

			m.Receive(AppKey, 0x0005, Unicast(0x0001), 0, onOffStatus(t, 1))

			resolved := false
			select {
			case <-exp.done:
				resolved = exp.err == nil
			default:
			}
			if resolved != tc.want {
				t.Errorf("resolved = %v, want %v", resolved, tc.want)
			}
		})
	}
}

func TestExpectVirtualDestination(t *testing.T) {
	m := New(Config{})

	label := mustUUID(t, "12345678-1234-5678-1234-567812345678")
	dst := Virtual(label)
	exp := m.Expect(AppKey, Criteria{
		Opcode:      access.OpGenericOnOffStatus,
		Destination: &dst,
	})
	defer exp.Cancel()

	m.Receive(AppKey, 0x0005, Unicast(0x0001), 0, onOffStatus(t, 1))
	select {
	case <-exp.done:
		t.Fatal("unicast delivery resolved a virtual-destination expectation")
	default:
	}

	m.Receive(AppKey, 0x0005, Virtual(label), 0, onOffStatus(t, 1))
	select {
	case <-exp.done:
	default:
		t.Fatal("virtual delivery did not resolve")
	}
}

func TestExpectTimeout(t *testing.T) {
	m := New(Config{})

	exp := m.Expect(AppKey, Criteria{Opcode: access.OpGenericOnOffStatus})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := exp.Wait(ctx)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Wait error = %v, want ErrTimeout", err)
	}

	// A late message must be ignored by the resolved expectation.
	m.Receive(AppKey, 0x0005, Unicast(0x0001), 0, onOffStatus(t, 1))
	if _, err := exp.Wait(context.Background()); !errors.Is(err, ErrCanceled) {
		t.Errorf("Wait after timeout = %v, want ErrCanceled", err)
	}
}

func TestExpectCancelIdempotent(t *testing.T) {
	m := New(Config{})

	exp := m.Expect(DevKey, Criteria{Opcode: access.OpConfigDefaultTTLStatus})
	exp.Cancel()
	exp.Cancel()

	if _, err := exp.Wait(context.Background()); !errors.Is(err, ErrCanceled) {
		t.Fatalf("Wait error = %v, want ErrCanceled", err)
	}

	// Canceled expectations no longer consume messages.
	other := m.Expect(DevKey, Criteria{Opcode: access.OpConfigDefaultTTLStatus})
	defer other.Cancel()

	payload, err := access.Encode(access.OpConfigDefaultTTLStatus, access.Values{"ttl": 5})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	m.Receive(DevKey, 0x0005, Unicast(0x0001), 0, payload)

	select {
	case <-other.done:
	default:
		t.Error("message was not delivered to the live expectation")
	}
}
