package types

// ------------------------
// Port / controller identity
// ------------------------

// PortID uniquely identifies a physical Type-C port on the board.
// It is an opaque lookup key, never used arithmetically.
type PortID uint8

// ControllerID uniquely identifies a PD controller chip instance.
type ControllerID uint8

// ------------------------
// Type-C default current
// ------------------------

// Current is the current class advertised by a passive Type-C connection
// at nominal 5V, independent of any PD contract.
type Current uint8

const (
	CurrentUSBDefault Current = iota // USB 2.0 / 3.x default
	Current1A5                       // 1.5 A
	Current3A0                       // 3.0 A
)

// ToMilliamps converts the current class to milliamps. The USB-default
// class depends on the bus generation; conservative picks the USB 2.0
// value. Advertisements are ceilings, so callers deriving capabilities
// should pass conservative=true.
func (c Current) ToMilliamps(conservative bool) uint16 {
	switch c {
	case Current1A5:
		return 1500
	case Current3A0:
		return 3000
	default:
		if conservative {
			return 500
		}
		return 900
	}
}

func (c Current) String() string {
	switch c {
	case Current1A5:
		return "1.5A"
	case Current3A0:
		return "3.0A"
	default:
		return "usb_default"
	}
}
