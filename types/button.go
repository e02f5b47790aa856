package types

// ------------------------
// Button press classification
// ------------------------

// PressKind is the press-duration category reported by the button
// service. It travels as a transport payload, so it stays a small
// copyable value.
type PressKind uint8

const (
	PressShort PressKind = iota
	PressLong
	PressAndHold
)

func (k PressKind) String() string {
	switch k {
	case PressShort:
		return "short"
	case PressLong:
		return "long"
	case PressAndHold:
		return "press_and_hold"
	default:
		return "unknown"
	}
}

// ButtonEvent is the retained-style record a consumer may republish,
// carrying the press class and a millisecond timestamp.
type ButtonEvent struct {
	Kind PressKind `json:"kind"`
	TS   int64     `json:"ts_ms"`
}
