//go:build tinygo && esp32c3

package fasttime

import "device"

// ESP32-C3 RISC-V variant. The mcycle counter is 64-bit but exposed as
// two 32-bit CSR halves, so a tear-free read takes three CSR accesses.

type counter = uint64

const counterBits = 64

// defaultFreqHz is the stock ESP32-C3 CPU clock.
const defaultFreqHz = 160_000_000

// readCycles performs a tear-free read of the 64-bit cycle counter.
//
// Reads mcycleh, mcycle, mcycleh and retries the whole sequence whenever
// the two high reads disagree, which happens only when the low word
// wrapped between them. A low-word wrap takes 2^32 cycles (~27 s at
// 160 MHz) while the three CSR reads take a handful of cycles, so at
// most one retry occurs in practice and no retry bound is needed. That
// termination argument holds as long as the counter cannot wrap its low
// word faster than three back-to-back CSR reads.
func readCycles() counter {
	for {
		hi1 := uint32(device.AsmFull("csrr {}, mcycleh", nil))
		lo := uint32(device.AsmFull("csrr {}, mcycle", nil))
		hi2 := uint32(device.AsmFull("csrr {}, mcycleh", nil))
		if hi1 == hi2 {
			return uint64(hi2)<<32 | uint64(lo)
		}
	}
}
