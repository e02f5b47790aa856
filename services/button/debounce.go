package button

import "time"

// ActiveState says which electrical level means "pressed".
type ActiveState uint8

const (
	ActiveLow ActiveState = iota // pressed pulls the pin low
	ActiveHigh
)

// Debouncer filters contact bounce by requiring a number of consecutive
// identical samples at a fixed period before a level change is believed.
type Debouncer struct {
	Samples uint8
	Period  time.Duration
	Active  ActiveState
}

// NewDebouncer builds a debouncer. Samples below 1 and a zero period are
// coerced by Config sanitation.
func NewDebouncer(samples uint8, period time.Duration, active ActiveState) Debouncer {
	return Debouncer{Samples: samples, Period: period, Active: active}
}

// pressed maps an electrical level to the logical pressed state.
func (d Debouncer) pressed(level bool) bool {
	if d.Active == ActiveLow {
		return !level
	}
	return level
}
