//go:build rp2040

package platform

import (
	"io"
	"machine"

	"pdcore-go/errcode"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// ----------------------------- GPIO (rp2) ------------------------------------

type rp2Pin struct {
	p machine.Pin
	n int
}

// Pin wraps a machine pin number as a GPIOPin.
func Pin(n int) GPIOPin {
	return &rp2Pin{p: machine.Pin(n), n: n}
}

func (r *rp2Pin) Number() int { return r.n }

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool     { return r.p.Get() }

func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

// ----------------------------- UART log sink ---------------------------------

// UARTLogWriter configures a uartx port and returns it as an io.Writer,
// suitable for fmtx.DefaultOutput. Pins and baud follow the board plan;
// zero baud picks the uartx default.
func UARTLogWriter(id string, baud uint32, tx, rx int) (io.Writer, error) {
	var hw *uartx.UART
	switch id {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, errcode.Unsupported
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.Pin(tx),
		RX:       machine.Pin(rx),
	}); err != nil {
		return nil, err
	}
	return hw, nil
}
