// Package bench runs the on-target timing benchmarks and streams the
// results as report frames. It is target-independent: the per-MCU mains
// under targets/ hand it a serial writer and call Run in a loop.
package bench

import (
	"io"
	"time"

	"fasttime"
	"fasttime/report"
)

const loopIters = 1000

// Hello writes the counter description frame. Send once at startup,
// before the first Run, so the host knows the counter width and the
// frequency the samples were converted with.
func Hello(w io.Writer) {
	frame := report.AppendCounterInfo(nil, report.CounterInfo{
		Bits:   uint8(fasttime.CounterBits()),
		FreqHz: fasttime.Frequency(),
	})
	w.Write(frame)
}

// Run executes one benchmark round and writes the framed samples to w.
// Each round measures the capture overhead, both conversion paths, and
// one known wall-clock interval as an end-to-end frequency check.
func Run(w io.Writer) {
	cvt := fasttime.NewDefaultUSConverter()
	buf := make([]byte, 0, 128)
	var sink uint64

	// Timestamp capture overhead, averaged over a tight loop.
	start := fasttime.Now()
	for i := 0; i < loopIters; i++ {
		sink += fasttime.CyclesBetween(start, fasttime.Now())
	}
	cycles := fasttime.CyclesBetween(start, fasttime.Now()) / loopIters
	buf = appendMetric(buf, report.MetricNowOverhead, cycles, cvt)

	// Division-based conversion, per call.
	start = fasttime.Now()
	for i := 0; i < loopIters; i++ {
		sink += fasttime.CyclesToUS(uint64(i) * 997)
	}
	cycles = fasttime.CyclesBetween(start, fasttime.Now()) / loopIters
	buf = appendMetric(buf, report.MetricDivConvert, cycles, cvt)

	// Fixed-point conversion, per call. On most MCUs this lands well
	// under the division path; the host prints both side by side.
	start = fasttime.Now()
	for i := 0; i < loopIters; i++ {
		sink += cvt.ToUS(uint64(i) * 997)
	}
	cycles = fasttime.CyclesBetween(start, fasttime.Now()) / loopIters
	buf = appendMetric(buf, report.MetricFixedConvert, cycles, cvt)
	keepAlive(sink)

	// A known wall-clock interval: if the configured frequency is right,
	// the microsecond figure comes back near 10000.
	start = fasttime.Now()
	time.Sleep(10 * time.Millisecond)
	cycles = fasttime.CyclesBetween(start, fasttime.Now())
	buf = appendMetric(buf, report.MetricBusyLoop, cycles, cvt)

	w.Write(buf)
}

func appendMetric(dst []byte, metric uint8, cycles uint64, cvt fasttime.USConverter) []byte {
	return report.AppendSample(dst, report.Sample{
		Metric: metric,
		Cycles: cycles,
		US:     cvt.ToUS(cycles),
	})
}

// keepAlive defeats dead-code elimination of the benchmark bodies.
//
//go:noinline
func keepAlive(uint64) {}
