// Package power normalizes heterogeneous PD capability records into one
// voltage/current shape so policy logic never branches on PDO kind.
package power

import (
	"pdcore-go/pdo/sink"
	"pdcore-go/pdo/source"
	"pdcore-go/types"
	"pdcore-go/x/fmtx"
)

// Capability is one negotiable or advertised electrical operating point.
// Values are only ever produced by the derivation functions below; a
// zero Capability is not a valid operating point.
type Capability struct {
	VoltageMV uint32
	CurrentMA uint16
}

// PowerMW returns the operating point's power in milliwatts.
func (c Capability) PowerMW() uint32 {
	return c.VoltageMV * uint32(c.CurrentMA) / 1000
}

func (c Capability) String() string {
	return fmtx.Sprintf("%dmV@%dmA", c.VoltageMV, c.CurrentMA)
}

// FromSource derives the capability advertised by a source PDO. The
// function is total over the sealed variant set; malformed raw words are
// the decoder's problem, never this function's.
//
// Battery and EPR-AVS currents come from power via truncating integer
// division. Existing negotiation logic depends on the truncation, so it
// must not be changed to rounding.
func FromSource(p source.Pdo) Capability {
	switch p := p.(type) {
	case source.Fixed:
		return Capability{VoltageMV: uint32(p.VoltageMV), CurrentMA: p.CurrentMA}
	case source.Variable:
		return Capability{VoltageMV: uint32(p.MaxVoltageMV), CurrentMA: p.MaxCurrentMA}
	case source.Battery:
		return Capability{
			VoltageMV: uint32(p.MaxVoltageMV),
			CurrentMA: milliampsFromPower(p.MaxPowerMW, p.MaxVoltageMV),
		}
	case source.SprPps:
		return Capability{VoltageMV: uint32(p.MaxVoltageMV), CurrentMA: p.MaxCurrentMA}
	case source.EprAvs:
		return Capability{
			VoltageMV: uint32(p.MaxVoltageMV),
			CurrentMA: milliampsFromPower(p.PdpMW, p.MaxVoltageMV),
		}
	case source.SprAvs:
		return sprAvsMax(p.MaxCurrent15VMA, p.MaxCurrent20VMA)
	}
	// Unreachable: source.Pdo is sealed.
	return Capability{}
}

// FromSink derives the capability requested by a sink PDO. Augmented
// objects derive identically to the source side; the plain variants use
// the sink's operational fields.
func FromSink(p sink.Pdo) Capability {
	switch p := p.(type) {
	case sink.Fixed:
		return Capability{VoltageMV: uint32(p.VoltageMV), CurrentMA: p.OperationalCurrentMA}
	case sink.Variable:
		return Capability{VoltageMV: uint32(p.MaxVoltageMV), CurrentMA: p.OperationalCurrentMA}
	case sink.Battery:
		return Capability{
			VoltageMV: uint32(p.MaxVoltageMV),
			CurrentMA: milliampsFromPower(p.OperationalPowerMW, p.MaxVoltageMV),
		}
	case sink.SprPps:
		return Capability{VoltageMV: uint32(p.MaxVoltageMV), CurrentMA: p.MaxCurrentMA}
	case sink.EprAvs:
		return Capability{
			VoltageMV: uint32(p.MaxVoltageMV),
			CurrentMA: milliampsFromPower(p.PdpMW, p.MaxVoltageMV),
		}
	case sink.SprAvs:
		return sprAvsMax(p.MaxCurrent15VMA, p.MaxCurrent20VMA)
	}
	// Unreachable: sink.Pdo is sealed.
	return Capability{}
}

// FromTypeC derives the capability of a passive Type-C attachment: the
// nominal 5V rail at the conservative reading of the advertised class.
func FromTypeC(c types.Current) Capability {
	return Capability{VoltageMV: 5000, CurrentMA: c.ToMilliamps(true)}
}

// milliampsFromPower converts a power advertisement to the current it
// sustains at the given voltage. mW over mV yields amps, so the power is
// scaled to microwatts first. The division truncates.
func milliampsFromPower(powerMW uint32, voltageMV uint16) uint16 {
	if voltageMV == 0 {
		return 0
	}
	return uint16(powerMW * 1000 / uint32(voltageMV))
}

// sprAvsMax resolves the SPR-AVS two-rail advertisement to whichever
// rail yields the greater total power. Ties favour the 20V rail.
func sprAvsMax(max15MA, max20MA uint16) Capability {
	if uint32(max15MA)*15000 > uint32(max20MA)*20000 {
		return Capability{VoltageMV: 15000, CurrentMA: max15MA}
	}
	return Capability{VoltageMV: 20000, CurrentMA: max20MA}
}
