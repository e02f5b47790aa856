// Package indicator consumes press classifications from the power
// endpoint and reflects them on status LEDs.
package indicator

import (
	"context"

	"pdcore-go/platform"
	"pdcore-go/transport"
	"pdcore-go/types"
)

// Receiver is the endpoint-facing half: its Process callback runs inside
// the sender's Send call, so it only copies the payload and signals the
// run loop through a 1-deep channel. When the loop lags, the oldest
// pending class is dropped in favour of the newest.
type Receiver struct {
	link *transport.EndpointLink
	sig  chan types.PressKind
}

// NewReceiver builds a receiver bound to reg's power endpoint. Call
// Register before any sender starts.
func NewReceiver(reg *transport.Registry) *Receiver {
	ep := transport.Internal(transport.InternalPower)
	return &Receiver{
		link: reg.NewLink(ep),
		sig:  make(chan types.PressKind, 1),
	}
}

// Register installs the receiver at its endpoint. Failures are
// configuration bugs and should halt initialization.
func (r *Receiver) Register(reg *transport.Registry) error {
	return reg.Register(r.link.Endpoint(), r, r.link)
}

// Process implements transport.MessageDelegate. Payloads of any other
// type are ignored.
func (r *Receiver) Process(msg *transport.Message) {
	ev, ok := msg.Data.(types.ButtonEvent)
	if !ok {
		return
	}
	k := ev.Kind
	for {
		select {
		case r.sig <- k:
			return
		default:
			select {
			case <-r.sig: // drop oldest
			default:
			}
		}
	}
}

// Indicator toggles one LED per press class.
type Indicator struct {
	recv              *Receiver
	short, long, hold platform.GPIOPin
}

func New(recv *Receiver, short, long, hold platform.GPIOPin) *Indicator {
	return &Indicator{recv: recv, short: short, long: long, hold: hold}
}

// Run loops until ctx ends.
func (i *Indicator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case k := <-i.recv.sig:
			switch k {
			case types.PressShort:
				i.short.Toggle()
			case types.PressLong:
				i.long.Toggle()
			case types.PressAndHold:
				i.hold.Toggle()
			}
		}
	}
}
