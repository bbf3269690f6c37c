//go:build esp32 || esp32c3

// Bench firmware for ESP32 boards, both Xtensa (32-bit CCOUNT, wraps
// every ~17.9 s at 240 MHz) and RISC-V (64-bit mcycle). Exercises the
// narrow-counter wrap handling that the RP2040 build never hits.
//
// The default frequency assumes the stock CPU clock (240 MHz Xtensa,
// 160 MHz C3); call fasttime.SetFrequency first if the firmware runs
// the core slower.
package main

import (
	"machine"
	"time"

	"fasttime/targets/bench"
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	time.Sleep(time.Second)
	bench.Hello(machine.Serial)

	for {
		bench.Run(machine.Serial)
		time.Sleep(time.Second)
	}
}
