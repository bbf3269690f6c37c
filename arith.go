package fasttime

// Wrap-safe ordering and difference primitives for both counter widths.
// Both sets compile on every target; Before and CyclesBetween pick one
// branch on the compile-time counterBits constant, so the unused width
// costs nothing. Keeping them separate also lets the host test suite
// exercise the narrow-counter math even though host builds run a 64-bit
// counter.

// before32 reports whether a precedes b on a 32-bit wrapping counter.
// The modular difference is reinterpreted as a signed 32-bit value and
// its sign tested, which classifies ordering correctly whenever the true
// separation is under half the counter range (2^31 cycles). Outside that
// window the answer is arbitrary.
func before32(a, b uint32) bool {
	return int32(a-b) < 0
}

// between32 returns b minus a in 32-bit modular arithmetic, widened to
// 64 bits. Always treated as a forward duration: the caller must pass a
// truly earlier a, otherwise the magnitude is garbage. No signed
// interpretation here, unlike before32.
func between32(a, b uint32) uint64 {
	return uint64(b - a)
}

// before64 reports whether a precedes b on a 64-bit counter. A plain
// compare suffices: a 64-bit counter cannot wrap within any realistic
// program run.
func before64(a, b uint64) bool {
	return a < b
}

// between64 returns b minus a on a 64-bit counter.
func between64(a, b uint64) uint64 {
	return b - a
}
