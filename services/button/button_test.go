//go:build !rp2040

package button

import (
	"context"
	"testing"
	"time"

	"pdcore-go/platform"
	"pdcore-go/types"
)

// testConfig compresses the press thresholds so a test completes in
// tens of milliseconds.
func testConfig() Config {
	return Config{
		Debounce:          NewDebouncer(2, time.Millisecond, ActiveLow),
		LongPressAfter:    60 * time.Millisecond,
		PressAndHoldAfter: 150 * time.Millisecond,
	}
}

// press drives an active-low fake pin through one press of the given
// duration.
func press(pin *platform.FakePin, hold time.Duration) {
	time.Sleep(10 * time.Millisecond)
	pin.Set(false)
	time.Sleep(hold)
	pin.Set(true)
}

func checkPress(t *testing.T, pin *platform.FakePin, hold time.Duration) types.PressKind {
	t.Helper()
	b := New(pin, testConfig())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go press(pin, hold)
	kind, ok := b.CheckPress(ctx)
	if !ok {
		t.Fatal("CheckPress gave up before the press completed")
	}
	return kind
}

func TestCheckPressShort(t *testing.T) {
	pin := platform.NewFakePin(1, true) // released
	if k := checkPress(t, pin, 20*time.Millisecond); k != types.PressShort {
		t.Fatalf("20ms press classified as %v, want short", k)
	}
}

func TestCheckPressLong(t *testing.T) {
	pin := platform.NewFakePin(1, true)
	if k := checkPress(t, pin, 90*time.Millisecond); k != types.PressLong {
		t.Fatalf("90ms press classified as %v, want long", k)
	}
}

func TestCheckPressAndHold(t *testing.T) {
	pin := platform.NewFakePin(1, true)
	// Held past the press-and-hold threshold; CheckPress must report
	// before the release.
	if k := checkPress(t, pin, 400*time.Millisecond); k != types.PressAndHold {
		t.Fatalf("held press classified as %v, want press_and_hold", k)
	}
}

func TestCheckPressContextCancel(t *testing.T) {
	pin := platform.NewFakePin(1, true)
	b := New(pin, testConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if _, ok := b.CheckPress(ctx); ok {
		t.Fatal("CheckPress reported a press on an idle pin")
	}
}

func TestConfigSanitized(t *testing.T) {
	c := Config{
		Debounce:          NewDebouncer(0, 0, ActiveHigh),
		LongPressAfter:    2 * time.Second,
		PressAndHoldAfter: time.Second, // below the long threshold
	}.sanitized()

	if c.Debounce.Samples < 1 {
		t.Fatal("zero debounce samples survived sanitation")
	}
	if c.Debounce.Period <= 0 {
		t.Fatal("zero debounce period survived sanitation")
	}
	if c.PressAndHoldAfter < c.LongPressAfter {
		t.Fatalf("hold threshold %v below long threshold %v",
			c.PressAndHoldAfter, c.LongPressAfter)
	}
}
