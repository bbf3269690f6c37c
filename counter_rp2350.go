//go:build tinygo && rp2350

package fasttime

import (
	"runtime/volatile"
	"unsafe"
)

// RP2350 variant. Same 64-bit 1 MHz TIMER timebase as the RP2040, but
// TIMER0 lives at a different base address and the raw (unlatched)
// halves sit at different offsets:
//   - RP2040 TIMER:  0x40054000, RAWH @ 0x08, RAWL @ 0x0C
//   - RP2350 TIMER0: 0x400B0000, RAWH @ 0x24, RAWL @ 0x28
// The raw registers are used instead of the latched TIMEHR/TIMELR pair
// so that concurrent readers on the other core cannot race the latch.

const (
	timerBase     = 0x400B0000       // RP2350 TIMER0 base address
	timerTimeRawH = timerBase + 0x24 // Raw timer high (no latching)
	timerTimeRawL = timerBase + 0x28 // Raw timer low (no latching)
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))
)

type counter = uint64

const counterBits = 64

// defaultFreqHz is the TIMER tick rate (1 tick = 1 us).
const defaultFreqHz = 1_000_000

// readCycles performs a tear-free high/low/high read of TIMER0.
// See the RP2040 variant for the retry termination argument; the wrap
// window is identical (2^32 us).
func readCycles() counter {
	for {
		high1 := timerRawH.Get()
		low := timerRawL.Get()
		high2 := timerRawH.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}
