//go:build !rp2040

package platform

import "sync"

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
}

// NewFakePin creates a host pin with the given number and level.
func NewFakePin(number int, level bool) *FakePin {
	return &FakePin{number: number, level: level}
}

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) ConfigureInput(_ Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

// ----------------------------- I²C (host) ------------------------------------

// HostI2C implements tinygo drivers.I2C for host-side tests. Reads are
// served from Regs keyed by the register byte written first; writes are
// recorded in LastTx.
type HostI2C struct {
	mu   sync.Mutex
	Regs map[uint8][]byte

	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

// SetReg replaces one register's readback bytes. Safe against a
// concurrent Tx.
func (h *HostI2C) SetReg(reg uint8, b []byte) {
	h.mu.Lock()
	if h.Regs == nil {
		h.Regs = make(map[uint8][]byte)
	}
	h.Regs[reg] = append([]byte(nil), b...)
	h.mu.Unlock()
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	if len(w) > 0 && len(r) > 0 {
		copy(r, h.Regs[w[0]])
	}
	return nil
}
