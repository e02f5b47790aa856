package pdsink

import (
	"context"
	"sync/atomic"
	"time"

	"pdcore-go/errcode"
	"pdcore-go/power"
	"pdcore-go/transport"
	"pdcore-go/x/fmtx"
)

// Service polls the controller and sends the selected capability to the
// USB-C endpoint whenever it changes. Like every sender, it surfaces
// send failures instead of dropping them.
type Service struct {
	dev   *Device
	link  *transport.EndpointLink
	dest  transport.Endpoint
	every time.Duration

	last      power.Capability
	published bool
	sendFails atomic.Uint32
}

func NewService(reg *transport.Registry, dev *Device, every time.Duration) *Service {
	dest := transport.Internal(transport.InternalUsbC)
	if every <= 0 {
		every = 250 * time.Millisecond
	}
	return &Service{
		dev:   dev,
		link:  reg.NewLink(dest),
		dest:  dest,
		every: every,
	}
}

// Run polls until ctx ends.
func (s *Service) Run(ctx context.Context) {
	t := time.NewTicker(s.every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.poll()
		}
	}
}

func (s *Service) poll() {
	cap, err := s.dev.BestCapability()
	if err != nil {
		if errcode.Of(err) != errcode.NotReady {
			fmtx.Printf("pdsink: poll failed: %s\n", err.Error())
		}
		return
	}
	if s.published && cap == s.last {
		return
	}
	if err := s.link.Send(s.dest, cap); err != nil {
		s.sendFails.Add(1)
		fmtx.Printf("pdsink: send %s to %s failed: %s\n",
			cap.String(), s.dest.String(), err.Error())
		return
	}
	s.last = cap
	s.published = true
}

// SendFailures returns the number of capability updates that could not
// be delivered.
func (s *Service) SendFailures() uint32 { return s.sendFails.Load() }
