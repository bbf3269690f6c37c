//go:build tinygo && esp32

package fasttime

import "device"

// ESP32 Xtensa variant. CCOUNT is a 32-bit special register that
// increments once per CPU clock cycle and wraps modulo 2^32, about every
// 17.9 s at the stock 240 MHz clock.

type counter = uint32

const counterBits = 32

// defaultFreqHz is the stock ESP32 CPU clock. Override with SetFrequency
// at startup if the firmware runs the core at 160 or 80 MHz.
const defaultFreqHz = 240_000_000

// readCycles reads the Xtensa CCOUNT register. A single 32-bit register
// read, so there is no tearing concern.
func readCycles() counter {
	return counter(device.AsmFull("rsr.ccount {}", nil))
}
