//go:build rp2040

// Command power-button: power-button bring-up for RP2040/Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./cmd/power-button
//
// Wiring assumptions (edit below as needed):
// - Button A on GP14, button B on GP15, both active-low to GND.
// - Short/long/hold indicator LEDs on GP16, GP17 and the onboard LED.
// - UART0 on GP0/GP1 carries the log output.
package main

import (
	"context"
	"time"

	"pdcore-go/platform"
	"pdcore-go/services/button"
	"pdcore-go/services/indicator"
	"pdcore-go/transport"
	"pdcore-go/x/fmtx"
)

const (
	pinButtonA = 14
	pinButtonB = 15
	pinLEDShrt = 16
	pinLEDLong = 17
	pinLEDHold = 25 // onboard LED
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	if w, err := platform.UARTLogWriter("uart0", 115200, 0, 1); err == nil {
		fmtx.DefaultOutput = w
	}
	fmtx.Printf("power-button: boot\n")

	reg := transport.Default()

	recv := indicator.NewReceiver(reg)
	if err := recv.Register(reg); err != nil {
		// A registration failure is a wiring bug fixed at build time;
		// there is nothing sensible to run without the consumer.
		fmtx.Printf("power-button: register indicator: %s\n", err.Error())
		for {
			time.Sleep(time.Second)
		}
	}

	btnA := platform.Pin(pinButtonA)
	btnB := platform.Pin(pinButtonB)
	_ = btnA.ConfigureInput(platform.PullUp)
	_ = btnB.ConfigureInput(platform.PullUp)

	ledShort := platform.Pin(pinLEDShrt)
	ledLong := platform.Pin(pinLEDLong)
	ledHold := platform.Pin(pinLEDHold)
	_ = ledShort.ConfigureOutput(false)
	_ = ledLong.ConfigureOutput(false)
	_ = ledHold.ConfigureOutput(false)

	ctx := context.Background()

	// Button A uses a custom config, button B the defaults.
	cfgA := button.Config{
		Debounce:          button.NewDebouncer(3, 10*time.Millisecond, button.ActiveLow),
		LongPressAfter:    time.Second,
		PressAndHoldAfter: 2 * time.Second,
	}
	go button.NewService(reg, button.New(btnA, cfgA)).Run(ctx)
	go button.NewService(reg, button.New(btnB, button.DefaultConfig())).Run(ctx)

	indicator.New(recv, ledShort, ledLong, ledHold).Run(ctx)
}
