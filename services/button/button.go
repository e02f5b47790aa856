// Package button watches a GPIO push button, classifies presses by held
// duration and reports them to the power endpoint.
package button

import (
	"context"
	"time"

	"pdcore-go/platform"
	"pdcore-go/types"
	"pdcore-go/x/mathx"
)

// Config sets the debounce behaviour and the press-duration thresholds.
// A press released before LongPressAfter is short; one released before
// PressAndHoldAfter is long; a press still held at PressAndHoldAfter is
// reported as press-and-hold without waiting for release.
type Config struct {
	Debounce          Debouncer     `json:"-"`
	LongPressAfter    time.Duration `json:"long_press_after"`
	PressAndHoldAfter time.Duration `json:"press_and_hold_after"`
}

// DefaultConfig matches the reference bring-up: 3 samples at 10ms,
// active-low, 1s long press, 2s press-and-hold.
func DefaultConfig() Config {
	return Config{
		Debounce:          NewDebouncer(3, 10*time.Millisecond, ActiveLow),
		LongPressAfter:    time.Second,
		PressAndHoldAfter: 2 * time.Second,
	}
}

func (c Config) sanitized() Config {
	c.Debounce.Samples = mathx.Max(c.Debounce.Samples, 1)
	if c.Debounce.Period <= 0 {
		c.Debounce.Period = 10 * time.Millisecond
	}
	c.LongPressAfter = mathx.Max(c.LongPressAfter, c.Debounce.Period)
	// The hold threshold can never sit below the long threshold.
	c.PressAndHoldAfter = mathx.Max(c.PressAndHoldAfter, c.LongPressAfter)
	return c
}

// Button binds one GPIO to a press classifier.
type Button struct {
	pin platform.GPIOPin
	cfg Config
}

func New(pin platform.GPIOPin, cfg Config) *Button {
	return &Button{pin: pin, cfg: cfg.sanitized()}
}

// CheckPress blocks until one complete press has been observed and
// returns its classification. It reports ok=false only when ctx ends.
func (b *Button) CheckPress(ctx context.Context) (types.PressKind, bool) {
	// Start from a released pin so a single physical press yields a
	// single event, even after a press-and-hold report.
	if !b.waitFor(ctx, false) {
		return 0, false
	}
	if !b.waitFor(ctx, true) {
		return 0, false
	}
	start := time.Now()

	released, ok := b.waitReleaseUntil(ctx, start.Add(b.cfg.PressAndHoldAfter))
	if !ok {
		return 0, false
	}
	if !released {
		return types.PressAndHold, true
	}
	if time.Since(start) >= b.cfg.LongPressAfter {
		return types.PressLong, true
	}
	return types.PressShort, true
}

// waitFor samples until the debounced logical state equals pressed.
func (b *Button) waitFor(ctx context.Context, pressed bool) bool {
	need := int(b.cfg.Debounce.Samples)
	stable := 0
	t := time.NewTicker(b.cfg.Debounce.Period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
		}
		if b.cfg.Debounce.pressed(b.pin.Get()) == pressed {
			stable++
			if stable >= need {
				return true
			}
		} else {
			stable = 0
		}
	}
}

// waitReleaseUntil waits for a debounced release, giving up at deadline.
// released=false with ok=true means the deadline passed while held.
func (b *Button) waitReleaseUntil(ctx context.Context, deadline time.Time) (released, ok bool) {
	need := int(b.cfg.Debounce.Samples)
	stable := 0
	t := time.NewTicker(b.cfg.Debounce.Period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return false, false
		case <-t.C:
		}
		if time.Now().After(deadline) {
			return false, true
		}
		if !b.cfg.Debounce.pressed(b.pin.Get()) {
			stable++
			if stable >= need {
				return true, true
			}
		} else {
			stable = 0
		}
	}
}
