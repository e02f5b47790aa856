// Package transport routes small typed messages between firmware
// subsystems by logical endpoint address, so tasks can talk without
// holding references to each other. The endpoint set is fixed at build
// time; handlers are registered once at startup and never removed.
package transport

import (
	"sync"

	"pdcore-go/errcode"
)

// -----------------------------------------------------------------------------
// Endpoints
// -----------------------------------------------------------------------------

// InternalEndpoint tags a subsystem on this controller.
type InternalEndpoint uint8

const (
	InternalPower InternalEndpoint = iota // power button / indicator subsystem
	InternalBattery
	InternalUsbC
)

// ExternalEndpoint tags an off-chip destination.
type ExternalEndpoint uint8

const (
	ExternalHost ExternalEndpoint = iota
)

// Endpoint identifies a logical message destination. It is a small
// comparable value, usable directly as a map key.
type Endpoint struct {
	class uint8
	tag   uint8
}

const (
	classInternal = 1
	classExternal = 2
)

// Internal builds the address of an on-chip subsystem.
func Internal(t InternalEndpoint) Endpoint {
	return Endpoint{class: classInternal, tag: uint8(t)}
}

// External builds the address of an off-chip destination.
func External(t ExternalEndpoint) Endpoint {
	return Endpoint{class: classExternal, tag: uint8(t)}
}

func (e Endpoint) String() string {
	switch e.class {
	case classInternal:
		switch InternalEndpoint(e.tag) {
		case InternalPower:
			return "internal/power"
		case InternalBattery:
			return "internal/battery"
		case InternalUsbC:
			return "internal/usbc"
		}
	case classExternal:
		switch ExternalEndpoint(e.tag) {
		case ExternalHost:
			return "external/host"
		}
	}
	return "invalid"
}

// -----------------------------------------------------------------------------
// Message + delegate
// -----------------------------------------------------------------------------

// Message is what a registered delegate receives. It is read-only to the
// registry and to the handler; its lifetime is the dispatch call.
type Message struct {
	To   Endpoint
	Data any
}

// MessageDelegate is the receiving side of an endpoint. Process runs
// synchronously inside the sender's Send call while the registry lock is
// held, so it must not block: copy the payload, signal a waiting task,
// return.
type MessageDelegate interface {
	Process(msg *Message)
}

// DelegateFunc adapts an ordinary function to a MessageDelegate.
type DelegateFunc func(msg *Message)

// Process implements MessageDelegate.
func (f DelegateFunc) Process(msg *Message) { f(msg) }

// -----------------------------------------------------------------------------
// EndpointLink
// -----------------------------------------------------------------------------

// EndpointLink is a handle bound to exactly one endpoint address. It is
// created uninitialized and moves to registered exactly once, via
// Registry.Register. A link does not need to be registered to send, only
// to receive.
type EndpointLink struct {
	ep         Endpoint
	reg        *Registry
	registered bool // guarded by reg.mu
}

// Endpoint returns the address this link is bound to.
func (l *EndpointLink) Endpoint() Endpoint { return l.ep }

// Send delivers data to the destination endpoint through the link's
// registry. See Registry.Send for the delivery contract.
func (l *EndpointLink) Send(to Endpoint, data any) error {
	return l.reg.Send(to, data)
}

// -----------------------------------------------------------------------------
// Registry
// -----------------------------------------------------------------------------

// Registry maps endpoint addresses to their delegates. All sends are
// serialized behind one lock: the critical section is a map lookup plus
// the delegate's Process call, so a handler that stalls blocks every
// sender, including senders targeting other endpoints. That coupling is
// the price of a single lock and is acceptable for the small fixed
// endpoint set; handlers are required to be non-blocking.
type Registry struct {
	mu        sync.Mutex
	delegates map[Endpoint]MessageDelegate
}

// NewRegistry creates an empty endpoint registry.
func NewRegistry() *Registry {
	return &Registry{delegates: make(map[Endpoint]MessageDelegate)}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry shared by firmware tasks
// that do not carry an explicit one.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = NewRegistry() })
	return defaultReg
}

// NewLink creates an uninitialized link bound to ep.
func (r *Registry) NewLink(ep Endpoint) *EndpointLink {
	return &EndpointLink{ep: ep, reg: r}
}

// Register installs d as the sole delegate for ep and marks link
// registered. It fails with errcode.AddressMismatch when the link is
// bound to a different address, and errcode.AlreadyRegistered when the
// address is occupied or the link was already used. On failure nothing
// is mutated. Registration errors are configuration bugs; callers
// normally treat them as fatal at startup.
func (r *Registry) Register(ep Endpoint, d MessageDelegate, link *EndpointLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if link.ep != ep {
		return errcode.AddressMismatch
	}
	if link.registered {
		return errcode.AlreadyRegistered
	}
	if _, occupied := r.delegates[ep]; occupied {
		return errcode.AlreadyRegistered
	}
	r.delegates[ep] = d
	link.registered = true
	return nil
}

// Send looks up the delegate for to and invokes it synchronously with a
// Message built from the call. It fails with errcode.UnknownDestination
// when no delegate is registered; the delegate is then never invoked.
// Messages sent to one destination from one task are delivered in the
// order sent; no ordering holds across senders.
func (r *Registry) Send(to Endpoint, data any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.delegates[to]
	if !ok {
		return errcode.UnknownDestination
	}
	msg := Message{To: to, Data: data}
	d.Process(&msg)
	return nil
}
