package button

import (
	"context"
	"sync/atomic"

	"pdcore-go/transport"
	"pdcore-go/types"
	"pdcore-go/x/fmtx"
	"pdcore-go/x/timex"
)

// Service runs one button's watch loop and sends each press class to the
// power endpoint. A failed send is counted and logged, never dropped
// silently: a stuck consumer must stay diagnosable.
type Service struct {
	btn       *Button
	link      *transport.EndpointLink
	dest      transport.Endpoint
	sendFails atomic.Uint32
}

// NewService wires a button to reg's power endpoint. The link is used
// for sending only; the service registers nothing.
func NewService(reg *transport.Registry, btn *Button) *Service {
	dest := transport.Internal(transport.InternalPower)
	return &Service{
		btn:  btn,
		link: reg.NewLink(dest),
		dest: dest,
	}
}

// Run loops until ctx ends.
func (s *Service) Run(ctx context.Context) {
	for {
		kind, ok := s.btn.CheckPress(ctx)
		if !ok {
			return
		}
		ev := types.ButtonEvent{Kind: kind, TS: timex.NowMs()}
		if err := s.link.Send(s.dest, ev); err != nil {
			s.sendFails.Add(1)
			fmtx.Printf("button: send %s to %s failed: %s\n",
				kind.String(), s.dest.String(), err.Error())
		}
	}
}

// SendFailures returns the number of presses that could not be delivered.
func (s *Service) SendFailures() uint32 { return s.sendFails.Load() }
