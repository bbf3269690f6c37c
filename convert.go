package fasttime

import "time"

// freqHz is the counter frequency used by the conversion helpers.
// Resolved once: the per-target default, optionally overridden by a
// single SetFrequency call during startup, then immutable. There is no
// lock; configure before timing, not during.
var freqHz uint64 = defaultFreqHz

// SetFrequency overrides the per-target default counter frequency, in
// Hz. Call it once at startup, before any conversion helper runs and
// before converters are built; converters constructed against the old
// frequency keep converting with it. The value cannot be validated
// here: a wrong frequency surfaces only as numerically wrong (never
// crashing) conversions.
func SetFrequency(hz uint64) {
	freqHz = hz
}

// Frequency returns the counter frequency used for conversions, in Hz.
func Frequency() uint64 {
	return freqHz
}

// WrapPeriod returns how long the counter runs before wrapping at the
// configured frequency. About 17.9 s for the 32-bit ESP32 counter at
// 240 MHz. For 64-bit counters the true period exceeds what a Duration
// can hold, so the maximum Duration (~292 years) is returned instead.
func WrapPeriod() time.Duration {
	if counterBits == 32 {
		return time.Duration(float64(1<<32) / float64(freqHz) * float64(time.Second))
	}
	return time.Duration(1<<63 - 1)
}

// CyclesToUS converts a cycle count to whole microseconds, truncating
// toward zero. Requires a counter frequency of at least 1 MHz.
//
// This is the simple conversion path: it costs a 64-bit division, which
// runs dozens of cycles on most MCUs. In hot loops keep results in
// cycles and convert at the boundary, or use a USConverter.
func CyclesToUS(cycles uint64) uint64 {
	return cycles / (freqHz / 1_000_000)
}

// CyclesToMS converts a cycle count to whole milliseconds, truncating
// toward zero. Same division cost and fixed-frequency caveat as
// CyclesToUS.
func CyclesToMS(cycles uint64) uint64 {
	return cycles / (freqHz / 1_000)
}

// ElapsedUS returns the whole microseconds elapsed since start. One
// counter read plus one division; non-negative under the half-range
// assumption.
func ElapsedUS(start Timestamp) uint64 {
	return CyclesToUS(CyclesBetween(start, Now()))
}

// ElapsedMS returns the whole milliseconds elapsed since start.
func ElapsedMS(start Timestamp) uint64 {
	return CyclesToMS(CyclesBetween(start, Now()))
}
