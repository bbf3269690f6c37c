//go:build tinygo && rp2040

package fasttime

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 variant. The chip has no user-visible CPU cycle counter on its
// Cortex-M0+ cores, so the timebase is the 64-bit TIMER peripheral
// instead: a 1 MHz microsecond counter read as two raw 32-bit halves.

// RP2040 TIMER peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

type counter = uint64

const counterBits = 64

// defaultFreqHz is the TIMER tick rate, not the CPU clock. One tick is
// one microsecond, so conversions are trivial but resolution is 1 us.
const defaultFreqHz = 1_000_000

// readCycles performs a tear-free read of the 64-bit TIMER counter.
//
// Must read high first, then low, then high again: if the two high reads
// agree, the low word did not wrap in between and the composite is
// consistent. A low-word wrap takes 2^32 us (~71 min) versus three bus
// reads, so a second retry never happens in practice and no retry bound
// is enforced.
func readCycles() counter {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}
