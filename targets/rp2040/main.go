//go:build rp2040 || rp2350

// Bench firmware for RP2040/RP2350 boards. Streams report frames over
// USB CDC once a second; collect them with host/cmd/fasttime-host.
//
// The timebase on these chips is the 1 MHz TIMER peripheral, so the
// library's default frequency needs no override here.
package main

import (
	"machine"
	"time"

	"fasttime/targets/bench"
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// Give the USB host a moment to enumerate before the first frame.
	time.Sleep(2 * time.Second)
	bench.Hello(machine.Serial)

	for {
		led.High()
		bench.Run(machine.Serial)
		led.Low()
		time.Sleep(time.Second)
	}
}
