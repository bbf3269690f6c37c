package fasttime

// Timestamp is an opaque point in time backed by the target's cycle
// counter. It wraps one raw counter value and nothing else: timestamps
// are trivially copyable, comparable only through Before, and two
// timestamps with equal ticks are indistinguishable.
type Timestamp struct {
	ticks counter
}

// Now captures the current counter value. Overhead is a single counter
// read (one register read on Xtensa, three on split-register targets).
//
// Two calls from the same execution context yield timestamps whose
// Before ordering matches real-time order, provided they are captured
// less than half the counter's wrap period apart.
func Now() Timestamp {
	return Timestamp{readCycles()}
}

// CounterBits returns the width in bits of the active target's counter:
// 32 on narrow targets (ESP32 Xtensa), 64 everywhere else.
func CounterBits() int {
	return counterBits
}

// Before reports whether a was captured earlier than b, staying correct
// across counter wraparound. The guarantee holds only while the true
// separation between a and b is under half the counter range; beyond
// that the result is arbitrary. Nothing checks the bound.
func Before(a, b Timestamp) bool {
	if counterBits == 32 {
		return before32(uint32(a.ticks), uint32(b.ticks))
	}
	return before64(uint64(a.ticks), uint64(b.ticks))
}

// CyclesBetween returns the elapsed cycles from a to b as a non-negative
// 64-bit count, computed with modular subtraction in the counter's own
// width. The delta is always read as a forward (b after a) duration;
// callers passing a later a get a garbage magnitude, same half-range
// caveat as Before.
func CyclesBetween(a, b Timestamp) uint64 {
	if counterBits == 32 {
		return between32(uint32(a.ticks), uint32(b.ticks))
	}
	return between64(uint64(a.ticks), uint64(b.ticks))
}
