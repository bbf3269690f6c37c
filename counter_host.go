//go:build !tinygo

package fasttime

import (
	_ "unsafe" // for go:linkname
)

// Host variant, active in regular Go builds (tests, host-side tools).
// There is no portable cycle register to read from userspace, so the
// counter is the Go runtime's monotonic clock: one tick is one
// nanosecond, which makes the nominal frequency exactly 1 GHz.

//go:linkname nanotime runtime.nanotime
func nanotime() int64

type counter = uint64

const counterBits = 64

const defaultFreqHz = 1_000_000_000

// readCycles returns monotonic nanoseconds since an unspecified start
// point. Never wraps within a program run.
func readCycles() counter {
	return counter(nanotime())
}
