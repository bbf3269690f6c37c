//go:build !tinygo

package fasttime

import (
	"sort"
	"time"
)

// CalibrateFrequency estimates the live counter frequency by timing the
// counter against the wall clock. It runs the given number of trials,
// each sleeping for window, and returns the median estimate in Hz to
// ride out scheduler jitter in individual trials.
//
// Host builds only: on MCU targets the frequency is a hardware constant
// and measuring it against a clock derived from the same crystal proves
// nothing. On a host this is a sanity check that a configured frequency
// matches what the counter actually does.
func CalibrateFrequency(trials int, window time.Duration) uint64 {
	if trials < 1 {
		trials = 1
	}
	freqs := make([]uint64, trials)
	for i := range freqs {
		start := Now()
		wallStart := time.Now()
		time.Sleep(window)
		ticks := CyclesBetween(start, Now())
		elapsed := time.Since(wallStart)
		freqs[i] = uint64(float64(ticks) / elapsed.Seconds())
	}
	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })
	return freqs[trials/2]
}
