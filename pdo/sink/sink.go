// Package sink models decoded sink-role Power Data Objects. Sink PDOs
// describe consumption requests, so the fixed, variable and battery
// variants carry operational fields where the source side carries maxima.
package sink

import "pdcore-go/errcode"

// Pdo is the closed set of sink PDO variants.
type Pdo interface {
	isSinkPdo()
}

// Apdo marks the augmented (APDO) subset of the variant set.
type Apdo interface {
	Pdo
	isSinkApdo()
}

// Fixed is a fixed-voltage consumption request.
type Fixed struct {
	VoltageMV            uint16
	OperationalCurrentMA uint16
}

// Variable is a consumption request over a voltage range.
type Variable struct {
	MaxVoltageMV         uint16
	OperationalCurrentMA uint16
}

// Battery requests power rather than current.
type Battery struct {
	MaxVoltageMV       uint16
	OperationalPowerMW uint32
}

// SprPps is an SPR Programmable Power Supply APDO. Augmented sink
// objects are structurally identical to their source counterparts.
type SprPps struct {
	MaxVoltageMV uint16
	MaxCurrentMA uint16
}

// EprAvs is an EPR Adjustable Voltage Supply APDO.
type EprAvs struct {
	MaxVoltageMV uint16
	PdpMW        uint32
}

// SprAvs is an SPR Adjustable Voltage Supply APDO.
type SprAvs struct {
	MaxCurrent15VMA uint16
	MaxCurrent20VMA uint16
}

func (Fixed) isSinkPdo()    {}
func (Variable) isSinkPdo() {}
func (Battery) isSinkPdo()  {}
func (SprPps) isSinkPdo()   {}
func (EprAvs) isSinkPdo()   {}
func (SprAvs) isSinkPdo()   {}

func (SprPps) isSinkApdo() {}
func (EprAvs) isSinkApdo() {}
func (SprAvs) isSinkApdo() {}

var (
	_ Apdo = SprPps{}
	_ Apdo = EprAvs{}
	_ Apdo = SprAvs{}
)

// Decode converts one raw 32-bit sink PDO word into its variant.
// Scaling matches the source side; reserved APDO subtypes decode to
// errcode.InvalidPayload.
func Decode(raw uint32) (Pdo, error) {
	switch raw >> 30 {
	case 0b00:
		return Fixed{
			VoltageMV:            uint16((raw >> 10 & 0x3ff) * 50),
			OperationalCurrentMA: uint16((raw & 0x3ff) * 10),
		}, nil
	case 0b01:
		return Battery{
			MaxVoltageMV:       uint16((raw >> 20 & 0x3ff) * 50),
			OperationalPowerMW: (raw & 0x3ff) * 250,
		}, nil
	case 0b10:
		return Variable{
			MaxVoltageMV:         uint16((raw >> 20 & 0x3ff) * 50),
			OperationalCurrentMA: uint16((raw & 0x3ff) * 10),
		}, nil
	}
	switch raw >> 28 & 0b11 {
	case 0b00:
		return SprPps{
			MaxVoltageMV: uint16((raw >> 17 & 0xff) * 100),
			MaxCurrentMA: uint16((raw & 0x7f) * 50),
		}, nil
	case 0b01:
		return EprAvs{
			MaxVoltageMV: uint16((raw >> 17 & 0x1ff) * 100),
			PdpMW:        (raw & 0xff) * 1000,
		}, nil
	case 0b10:
		return SprAvs{
			MaxCurrent15VMA: uint16((raw >> 10 & 0x3ff) * 10),
			MaxCurrent20VMA: uint16((raw & 0x3ff) * 10),
		}, nil
	default:
		return nil, errcode.InvalidPayload
	}
}
