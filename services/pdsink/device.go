// Package pdsink polls a USB-PD sink controller, turns the source's
// advertised PDOs into normalized capabilities and publishes the best
// one to the USB-C endpoint.
package pdsink

import (
	"tinygo.org/x/drivers"

	"pdcore-go/errcode"
	"pdcore-go/pdo/source"
	"pdcore-go/power"
)

// Register map of an AP3377x-style sink controller: raw 32-bit source
// PDO words at the base of the map, a count register, and coarse
// telemetry with fixed per-unit scaling.
const (
	regSrcPDO  = 0x00 // maxPDOs * 4 bytes, little endian words
	regPDONum  = 0x1c
	regVoltage = 0x20 // 80 mV units
	regCurrent = 0x21 // 24 mA units

	maxPDOs = 7

	milliVoltsPerUnit = 80
	milliAmpsPerUnit  = 24
)

// Device is one sink controller on an I2C bus.
type Device struct {
	bus  drivers.I2C
	addr uint16

	scratch [4 * maxPDOs]byte
}

func New(bus drivers.I2C, addr uint16) *Device {
	return &Device{bus: bus, addr: addr}
}

func (d *Device) readReg(reg uint8, buf []byte) error {
	if err := d.bus.Tx(d.addr, []byte{reg}, buf); err != nil {
		return &errcode.E{C: errcode.Error, Op: "pdsink.read", Err: err}
	}
	return nil
}

// SourceCapabilities reads and decodes the port partner's source PDOs.
// Zero words terminate the list early; a reserved APDO subtype is a
// decode error, not this layer's to paper over.
func (d *Device) SourceCapabilities() ([]source.Pdo, error) {
	var cnt [1]byte
	if err := d.readReg(regPDONum, cnt[:]); err != nil {
		return nil, err
	}
	n := int(cnt[0])
	if n > maxPDOs {
		n = maxPDOs
	}
	if n == 0 {
		return nil, nil
	}

	buf := d.scratch[:4*n]
	if err := d.readReg(regSrcPDO, buf); err != nil {
		return nil, err
	}

	pdos := make([]source.Pdo, 0, n)
	for i := 0; i < n; i++ {
		raw := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 |
			uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		if raw == 0 {
			break
		}
		p, err := source.Decode(raw)
		if err != nil {
			return nil, &errcode.E{C: errcode.Of(err), Op: "pdsink.decode", Err: err}
		}
		pdos = append(pdos, p)
	}
	return pdos, nil
}

// BestCapability derives a capability per advertised PDO and returns the
// one with the greatest power. errcode.NotReady means the partner has
// not advertised anything yet.
func (d *Device) BestCapability() (power.Capability, error) {
	pdos, err := d.SourceCapabilities()
	if err != nil {
		return power.Capability{}, err
	}
	if len(pdos) == 0 {
		return power.Capability{}, errcode.NotReady
	}
	best := power.FromSource(pdos[0])
	for _, p := range pdos[1:] {
		if c := power.FromSource(p); c.PowerMW() > best.PowerMW() {
			best = c
		}
	}
	return best, nil
}

// MeasureVoltage reads the bus voltage in millivolts.
func (d *Device) MeasureVoltage() (uint32, error) {
	var v [1]byte
	if err := d.readReg(regVoltage, v[:]); err != nil {
		return 0, err
	}
	return uint32(v[0]) * milliVoltsPerUnit, nil
}

// MeasureCurrent reads the bus current in milliamps.
func (d *Device) MeasureCurrent() (uint16, error) {
	var v [1]byte
	if err := d.readReg(regCurrent, v[:]); err != nil {
		return 0, err
	}
	return uint16(v[0]) * milliAmpsPerUnit, nil
}
