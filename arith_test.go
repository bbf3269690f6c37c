package fasttime

import "testing"

func TestBefore32WrapSafe(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   uint32
		before bool
	}{
		{"plain ordering", 100, 200, true},
		{"plain ordering reversed", 200, 100, false},
		{"equal timestamps", 5000, 5000, false},
		{"straddling the wrap", 0xFFFFFFF0, 0x00000010, true},
		{"straddling the wrap reversed", 0x00000010, 0xFFFFFFF0, false},
		{"just under half range", 0, 1<<31 - 1, true},
		{"wrap with large values", 0xFFFFFFFF, 0x00000000, true},
		{"adjacent ticks", 41, 42, true},
	}

	for _, tc := range testCases {
		if got := before32(tc.a, tc.b); got != tc.before {
			t.Errorf("%s: before32(0x%08X, 0x%08X) = %v, want %v",
				tc.name, tc.a, tc.b, got, tc.before)
		}
	}
}

func TestBetween32WrapSafe(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  uint32
		delta uint64
	}{
		{"zero elapsed", 1234, 1234, 0},
		{"small delta", 100, 142, 42},
		{"straddling the wrap", 0xFFFFFFF0, 0x00000010, 32},
		{"one tick before wrap", 0xFFFFFFFF, 0x00000000, 1},
		{"full low range", 0, 0xFFFFFFFF, 0xFFFFFFFF},
	}

	for _, tc := range testCases {
		if got := between32(tc.a, tc.b); got != tc.delta {
			t.Errorf("%s: between32(0x%08X, 0x%08X) = %d, want %d",
				tc.name, tc.a, tc.b, got, tc.delta)
		}
	}
}

func TestBefore64(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   uint64
		before bool
	}{
		{"plain ordering", 100, 200, true},
		{"plain ordering reversed", 200, 100, false},
		{"equal timestamps", 7, 7, false},
		{"past the 32-bit boundary", 0xFFFFFFFF, 0x100000000, true},
	}

	for _, tc := range testCases {
		if got := before64(tc.a, tc.b); got != tc.before {
			t.Errorf("%s: before64(%d, %d) = %v, want %v",
				tc.name, tc.a, tc.b, got, tc.before)
		}
	}
}

func TestBetween64(t *testing.T) {
	if got := between64(0xFFFFFFF0, 0x100000010); got != 32 {
		t.Errorf("between64 across the 32-bit boundary = %d, want 32", got)
	}
	if got := between64(1000, 1000); got != 0 {
		t.Errorf("between64 with equal inputs = %d, want 0", got)
	}
}

// The widened delta must come from modular subtraction, never from a
// signed reinterpretation: a wrap-straddling pair yields a small
// positive count, not a sign-extended huge one.
func TestBetween32NotSignExtended(t *testing.T) {
	delta := between32(0x00000010, 0xFFFFFFF0)
	if delta != 0xFFFFFFE0 {
		t.Errorf("between32(0x10, 0xFFFFFFF0) = 0x%X, want 0xFFFFFFE0", delta)
	}
	if delta>>32 != 0 {
		t.Errorf("between32 leaked into the high word: 0x%X", delta)
	}
}

// Ordering and delta must agree: whenever before32 says a precedes b,
// the delta from a to b is within half the counter range. A separation
// of exactly half the range is the ambiguous boundary, so the bound is
// inclusive.
func TestBeforeBetweenConsistency(t *testing.T) {
	values := []uint32{0, 1, 42, 1 << 16, 1<<31 - 1, 1 << 31, 0xFFFFFFF0, 0xFFFFFFFF}

	for _, a := range values {
		for _, b := range values {
			if a == b {
				continue
			}
			if before32(a, b) && between32(a, b) > 1<<31 {
				t.Errorf("before32(0x%08X, 0x%08X) true but delta %d exceeds half range",
					a, b, between32(a, b))
			}
		}
	}
}
