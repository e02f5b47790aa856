package power

import (
	"testing"

	"pdcore-go/pdo/sink"
	"pdcore-go/pdo/source"
	"pdcore-go/types"
)

func expectCap(t *testing.T, got Capability, wantMV uint32, wantMA uint16) {
	t.Helper()
	if got.VoltageMV != wantMV || got.CurrentMA != wantMA {
		t.Fatalf("capability = %dmV@%dmA, want %dmV@%dmA",
			got.VoltageMV, got.CurrentMA, wantMV, wantMA)
	}
}

func TestFromSource_DirectFields(t *testing.T) {
	expectCap(t, FromSource(source.Fixed{VoltageMV: 9000, CurrentMA: 3000}), 9000, 3000)
	expectCap(t, FromSource(source.Variable{MaxVoltageMV: 12000, MaxCurrentMA: 1500}), 12000, 1500)
	expectCap(t, FromSource(source.SprPps{MaxVoltageMV: 11000, MaxCurrentMA: 5000}), 11000, 5000)
}

func TestFromSource_BatteryTruncatingDivision(t *testing.T) {
	// 100W at 20V is exactly 5A.
	expectCap(t, FromSource(source.Battery{MaxVoltageMV: 20000, MaxPowerMW: 100000}), 20000, 5000)
	// 100W at 15V is 6.666A; the remainder is discarded, not rounded.
	expectCap(t, FromSource(source.Battery{MaxVoltageMV: 15000, MaxPowerMW: 100000}), 15000, 6666)
}

func TestFromSource_EprAvsPdpDivision(t *testing.T) {
	expectCap(t, FromSource(source.EprAvs{MaxVoltageMV: 28000, PdpMW: 140000}), 28000, 5000)
	// 100W at 28V truncates to 3571mA.
	expectCap(t, FromSource(source.EprAvs{MaxVoltageMV: 28000, PdpMW: 100000}), 28000, 3571)
}

func TestFromSource_SprAvsRailSelection(t *testing.T) {
	// 15V rail wins only on strictly greater power:
	// 2000mA*15V = 30W > 1000mA*20V = 20W.
	expectCap(t, FromSource(source.SprAvs{MaxCurrent15VMA: 2000, MaxCurrent20VMA: 1000}), 15000, 2000)

	// 20V rail wins outright: 1000mA*15V = 15W < 3000mA*20V = 60W.
	expectCap(t, FromSource(source.SprAvs{MaxCurrent15VMA: 1000, MaxCurrent20VMA: 3000}), 20000, 3000)

	// Exact tie (4000mA*15V == 3000mA*20V == 60W) favours the 20V rail.
	expectCap(t, FromSource(source.SprAvs{MaxCurrent15VMA: 4000, MaxCurrent20VMA: 3000}), 20000, 3000)
}

func TestFromSink_OperationalFields(t *testing.T) {
	expectCap(t, FromSink(sink.Fixed{VoltageMV: 5000, OperationalCurrentMA: 900}), 5000, 900)
	expectCap(t, FromSink(sink.Variable{MaxVoltageMV: 12000, OperationalCurrentMA: 2000}), 12000, 2000)
	expectCap(t, FromSink(sink.Battery{MaxVoltageMV: 20000, OperationalPowerMW: 45000}), 20000, 2250)
}

func TestFromSink_AugmentedMirrorsSource(t *testing.T) {
	expectCap(t, FromSink(sink.SprPps{MaxVoltageMV: 11000, MaxCurrentMA: 3000}), 11000, 3000)
	expectCap(t, FromSink(sink.EprAvs{MaxVoltageMV: 36000, PdpMW: 140000}), 36000, 3888)
	expectCap(t, FromSink(sink.SprAvs{MaxCurrent15VMA: 4000, MaxCurrent20VMA: 3000}), 20000, 3000)
}

func TestFromTypeC_AlwaysNominalFiveVolts(t *testing.T) {
	for _, c := range []types.Current{types.CurrentUSBDefault, types.Current1A5, types.Current3A0} {
		if got := FromTypeC(c); got.VoltageMV != 5000 {
			t.Fatalf("FromTypeC(%v).VoltageMV = %d, want 5000", c, got.VoltageMV)
		}
	}
	// The USB-default class takes the conservative reading.
	expectCap(t, FromTypeC(types.CurrentUSBDefault), 5000, 500)
	expectCap(t, FromTypeC(types.Current1A5), 5000, 1500)
	expectCap(t, FromTypeC(types.Current3A0), 5000, 3000)
}

func TestCapabilityPowerMW(t *testing.T) {
	c := Capability{VoltageMV: 20000, CurrentMA: 5000}
	if got := c.PowerMW(); got != 100000 {
		t.Fatalf("PowerMW = %d, want 100000", got)
	}
}
