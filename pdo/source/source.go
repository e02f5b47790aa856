// Package source models decoded source-role Power Data Objects. A source
// PDO advertises a supply limit, so every numeric field here is a maximum
// the port partner promises to honour.
package source

import "pdcore-go/errcode"

// Pdo is the closed set of source PDO variants. It is sealed so that
// capability derivation can switch over it exhaustively.
type Pdo interface {
	isSourcePdo()
}

// Apdo marks the augmented (APDO) subset of the variant set.
type Apdo interface {
	Pdo
	isSourceApdo()
}

// Fixed is a fixed-voltage supply.
type Fixed struct {
	VoltageMV uint16
	CurrentMA uint16
}

// Variable is a non-regulated supply spanning a voltage range.
type Variable struct {
	MaxVoltageMV uint16
	MaxCurrentMA uint16
}

// Battery advertises power rather than current.
type Battery struct {
	MaxVoltageMV uint16
	MaxPowerMW   uint32
}

// SprPps is an SPR Programmable Power Supply APDO.
type SprPps struct {
	MaxVoltageMV uint16
	MaxCurrentMA uint16
}

// EprAvs is an EPR Adjustable Voltage Supply APDO. Current is implied by
// the declared PDP wattage.
type EprAvs struct {
	MaxVoltageMV uint16
	PdpMW        uint32
}

// SprAvs is an SPR Adjustable Voltage Supply APDO. It carries one current
// limit per nominal rail.
type SprAvs struct {
	MaxCurrent15VMA uint16
	MaxCurrent20VMA uint16
}

func (Fixed) isSourcePdo()    {}
func (Variable) isSourcePdo() {}
func (Battery) isSourcePdo()  {}
func (SprPps) isSourcePdo()   {}
func (EprAvs) isSourcePdo()   {}
func (SprAvs) isSourcePdo()   {}

func (SprPps) isSourceApdo() {}
func (EprAvs) isSourceApdo() {}
func (SprAvs) isSourceApdo() {}

// Compile-time check that the augmented variants satisfy Apdo.
var (
	_ Apdo = SprPps{}
	_ Apdo = EprAvs{}
	_ Apdo = SprAvs{}
)

// Decode converts one raw 32-bit source PDO word into its variant.
// Field scaling follows the PD spec: 50mV/10mA for fixed and variable,
// 250mW for battery, 100mV/50mA for PPS, 1W for the EPR AVS PDP.
// Reserved APDO subtypes decode to errcode.InvalidPayload.
func Decode(raw uint32) (Pdo, error) {
	switch raw >> 30 {
	case 0b00:
		return Fixed{
			VoltageMV: uint16((raw >> 10 & 0x3ff) * 50),
			CurrentMA: uint16((raw & 0x3ff) * 10),
		}, nil
	case 0b01:
		return Battery{
			MaxVoltageMV: uint16((raw >> 20 & 0x3ff) * 50),
			MaxPowerMW:   (raw & 0x3ff) * 250,
		}, nil
	case 0b10:
		return Variable{
			MaxVoltageMV: uint16((raw >> 20 & 0x3ff) * 50),
			MaxCurrentMA: uint16((raw & 0x3ff) * 10),
		}, nil
	}
	// Augmented: subtype lives in bits 29:28.
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
