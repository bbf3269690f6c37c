package fasttime

// USConverter converts cycles to microseconds without a runtime
// division, using a fixed-point reciprocal precomputed at construction.
// Build one at init, then convert in hot loops with a single 64-bit
// multiply and shift.
//
// A converter is immutable after construction and safe to share between
// any number of concurrent readers. It encodes one fixed frequency; if
// the effective counter frequency changes, build a new one.
type USConverter struct {
	k     uint64 // fixed-point reciprocal: k ~= (1e6 / freqHz) << shift
	shift uint32 // right shift undoing the fixed-point scale
}

// DefaultQ is the default fixed-point fraction width (Q32.32).
const DefaultQ = 32

// NewUSConverter builds a converter for the given counter frequency and
// fraction width q. The reciprocal is rounded, not truncated:
//
//	k = round((1e6 << q) / freqHz)
//
// Construction is deterministic: equal (freqHz, q) inputs always yield
// the same converter.
//
// With q = 32 the multiply in ToUS stays within 64 bits for any cycle
// count the counter can produce between two valid timestamps; callers
// converting extreme cycle magnitudes in one go should pick a smaller q.
func NewUSConverter(freqHz uint64, q uint32) USConverter {
	return USConverter{
		k:     ((1_000_000 << uint64(q)) + freqHz/2) / freqHz,
		shift: q,
	}
}

// NewDefaultUSConverter builds a Q32 converter for the configured
// package frequency.
func NewDefaultUSConverter() USConverter {
	return NewUSConverter(Frequency(), DefaultQ)
}

// ToUS converts cycles to microseconds with one multiply and one shift.
//
// Agrees with CyclesToUS within the quantization of the reciprocal,
// typically under 1 us for realistic cycle magnitudes at q = 32. The
// accuracy depends entirely on the frequency the converter was built
// with being correct and constant.
func (c USConverter) ToUS(cycles uint64) uint64 {
	return (cycles * c.k) >> c.shift
}
