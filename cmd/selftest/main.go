//go:build rp2040

// Command selftest runs the transport checks on the target itself, for
// boards where the host test suite is not trusted to mirror the MCU
// scheduler. Solid LED = all passed, slow blink = failure.
package main

import (
	"time"

	"pdcore-go/errcode"
	"pdcore-go/platform"
	"pdcore-go/transport"
	"pdcore-go/types"
)

func logln(s string) { println(s) }

func testRoundTrip() bool {
	reg := transport.NewRegistry()
	ep := transport.Internal(transport.InternalPower)

	var got any
	d := transport.DelegateFunc(func(m *transport.Message) { got = m.Data })
	if err := reg.Register(ep, d, reg.NewLink(ep)); err != nil {
		logln("testRoundTrip: register failed")
		return false
	}
	if err := reg.Send(ep, types.PressLong); err != nil {
		logln("testRoundTrip: send failed")
		return false
	}
	if k, ok := got.(types.PressKind); !ok || k != types.PressLong {
		logln("testRoundTrip: payload mismatch")
		return false
	}
	return true
}

func testDuplicateRegister() bool {
	reg := transport.NewRegistry()
	ep := transport.Internal(transport.InternalBattery)
	d := transport.DelegateFunc(func(*transport.Message) {})

	if err := reg.Register(ep, d, reg.NewLink(ep)); err != nil {
		logln("testDuplicateRegister: first register failed")
		return false
	}
	err := reg.Register(ep, d, reg.NewLink(ep))
	if errcode.Of(err) != errcode.AlreadyRegistered {
		logln("testDuplicateRegister: wrong error")
		return false
	}
	return true
}

func testAddressMismatch() bool {
	reg := transport.NewRegistry()
	link := reg.NewLink(transport.Internal(transport.InternalPower))
	d := transport.DelegateFunc(func(*transport.Message) {})

	err := reg.Register(transport.Internal(transport.InternalUsbC), d, link)
	if errcode.Of(err) != errcode.AddressMismatch {
		logln("testAddressMismatch: wrong error")
		return false
	}
	return true
}

func testUnknownDestination() bool {
	reg := transport.NewRegistry()
	err := reg.Send(transport.External(transport.ExternalHost), "x")
	if errcode.Of(err) != errcode.UnknownDestination {
		logln("testUnknownDestination: wrong error")
		return false
	}
	return true
}

func testOrdering() bool {
	reg := transport.NewRegistry()
	ep := transport.Internal(transport.InternalPower)

	var got []int
	d := transport.DelegateFunc(func(m *transport.Message) {
		got = append(got, m.Data.(int))
	})
	if err := reg.Register(ep, d, reg.NewLink(ep)); err != nil {
		logln("testOrdering: register failed")
		return false
	}
	link := reg.NewLink(transport.Internal(transport.InternalUsbC))
	for i := 0; i < 8; i++ {
		if err := link.Send(ep, i); err != nil {
			logln("testOrdering: send failed")
			return false
		}
	}
	for i, v := range got {
		if v != i {
			logln("testOrdering: reordered")
			return false
		}
	}
	return len(got) == 8
}

func main() {
	time.Sleep(250 * time.Millisecond)

	led := platform.Pin(25)
	_ = led.ConfigureOutput(true) // signal "running"

	tests := []struct {
		name string
		fn   func() bool
	}{
		{"testRoundTrip", testRoundTrip},
		{"testDuplicateRegister", testDuplicateRegister},
		{"testAddressMismatch", testAddressMismatch},
		{"testUnknownDestination", testUnknownDestination},
		{"testOrdering", testOrdering},
	}

	failed := 0
	logln("== transport self-test starting ==")
	for _, tc := range tests {
		if tc.fn() {
			logln("[PASS] " + tc.name)
		} else {
			logln("[FAIL] " + tc.name)
			failed++
		}
		time.Sleep(10 * time.Millisecond)
	}
	logln("== done ==")

	if failed == 0 {
		for {
			led.Set(true)
			time.Sleep(2 * time.Second)
		}
	}
	for {
		led.Toggle()
		time.Sleep(250 * time.Millisecond)
	}
}
