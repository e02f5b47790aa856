package source

import (
	"testing"

	"pdcore-go/errcode"
)

func decodeOK(t *testing.T, raw uint32) Pdo {
	t.Helper()
	p, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode(%#08x): %v", raw, err)
	}
	return p
}

func TestDecodeFixed(t *testing.T) {
	// 5V (100 * 50mV) at 3A (300 * 10mA).
	raw := uint32(100)<<10 | 300
	p, ok := decodeOK(t, raw).(Fixed)
	if !ok {
		t.Fatalf("decoded %T, want Fixed", decodeOK(t, raw))
	}
	if p.VoltageMV != 5000 || p.CurrentMA != 3000 {
		t.Fatalf("fixed = %+v, want 5000mV/3000mA", p)
	}
}

func TestDecodeBattery(t *testing.T) {
	// 20V ceiling, 100W.
	raw := uint32(0b01)<<30 | uint32(400)<<20 | 400
	p, ok := decodeOK(t, raw).(Battery)
	if !ok || p.MaxVoltageMV != 20000 || p.MaxPowerMW != 100000 {
		t.Fatalf("battery = %+v (ok=%v), want 20000mV/100000mW", p, ok)
	}
}

func TestDecodeVariable(t *testing.T) {
	raw := uint32(0b10)<<30 | uint32(240)<<20 | 150
	p, ok := decodeOK(t, raw).(Variable)
	if !ok || p.MaxVoltageMV != 12000 || p.MaxCurrentMA != 1500 {
		t.Fatalf("variable = %+v (ok=%v), want 12000mV/1500mA", p, ok)
	}
}

func TestDecodeSprPps(t *testing.T) {
	// 11V max (110 * 100mV), 3A max (60 * 50mA).
	raw := uint32(0b11)<<30 | uint32(110)<<17 | 60
	p, ok := decodeOK(t, raw).(SprPps)
	if !ok || p.MaxVoltageMV != 11000 || p.MaxCurrentMA != 3000 {
		t.Fatalf("pps = %+v (ok=%v), want 11000mV/3000mA", p, ok)
	}
}

func TestDecodeEprAvs(t *testing.T) {
	// 28V max (280 * 100mV), 140W PDP.
	raw := uint32(0b11)<<30 | uint32(0b01)<<28 | uint32(280)<<17 | 140
	p, ok := decodeOK(t, raw).(EprAvs)
	if !ok || p.MaxVoltageMV != 28000 || p.PdpMW != 140000 {
		t.Fatalf("epr_avs = %+v (ok=%v), want 28000mV/140000mW", p, ok)
	}
}

func TestDecodeSprAvs(t *testing.T) {
	raw := uint32(0b11)<<30 | uint32(0b10)<<28 | uint32(200)<<10 | 100
	p, ok := decodeOK(t, raw).(SprAvs)
	if !ok || p.MaxCurrent15VMA != 2000 || p.MaxCurrent20VMA != 1000 {
		t.Fatalf("spr_avs = %+v (ok=%v), want 2000mA/1000mA", p, ok)
	}
}

func TestDecodeReservedApdo(t *testing.T) {
	raw := uint32(0b11)<<30 | uint32(0b11)<<28
	if _, err := Decode(raw); errcode.Of(err) != errcode.InvalidPayload {
		t.Fatalf("reserved APDO: got %v, want invalid_payload", err)
	}
}
