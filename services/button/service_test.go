//go:build !rp2040

package button

import (
	"context"
	"testing"
	"time"

	"pdcore-go/platform"
	"pdcore-go/transport"
	"pdcore-go/types"
)

func TestServiceDeliversPress(t *testing.T) {
	reg := transport.NewRegistry()
	ep := transport.Internal(transport.InternalPower)

	got := make(chan types.ButtonEvent, 4)
	d := transport.DelegateFunc(func(m *transport.Message) {
		if ev, ok := m.Data.(types.ButtonEvent); ok {
			got <- ev
		}
	})
	if err := reg.Register(ep, d, reg.NewLink(ep)); err != nil {
		t.Fatalf("register: %v", err)
	}

	pin := platform.NewFakePin(1, true)
	svc := NewService(reg, New(pin, testConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	press(pin, 20*time.Millisecond)

	select {
	case ev := <-got:
		if ev.Kind != types.PressShort {
			t.Fatalf("delivered %v, want short", ev.Kind)
		}
		if ev.TS == 0 {
			t.Fatal("event carries no timestamp")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for press delivery")
	}
	if n := svc.SendFailures(); n != 0 {
		t.Fatalf("send failures = %d, want 0", n)
	}
}

func TestServiceCountsUndeliverablePresses(t *testing.T) {
	// Nothing registered at the power endpoint: every send must fail
	// observably instead of vanishing.
	reg := transport.NewRegistry()
	pin := platform.NewFakePin(1, true)
	svc := NewService(reg, New(pin, testConfig()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	press(pin, 20*time.Millisecond)

	deadline := time.Now().Add(500 * time.Millisecond)
	for svc.SendFailures() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if n := svc.SendFailures(); n != 1 {
		t.Fatalf("send failures = %d, want 1", n)
	}
}
