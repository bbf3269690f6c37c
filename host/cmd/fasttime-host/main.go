// fasttime-host collects report frames from a board running the bench
// firmware and prints per-metric latency statistics.
//
// Usage:
//
//	fasttime-host -device /dev/ttyACM0
//	fasttime-host -replay capture.bin
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fasttime/host/serial"
	"fasttime/report"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	replay  = flag.String("replay", "", "Decode a recorded frame dump instead of a serial port")
	verbose = flag.Bool("verbose", false, "Print every sample as it arrives")
	every   = flag.Int("every", 20, "Print a statistics summary every N samples")
)

func main() {
	flag.Parse()

	src, err := openSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	stats := newMetricStats()
	sampleCount := 0

	dec := report.NewDecoder()
	dec.OnCounterInfo = func(ci report.CounterInfo) {
		fmt.Printf("counter: %d-bit @ %d Hz", ci.Bits, ci.FreqHz)
		if ci.Bits == 32 {
			wrapS := float64(uint64(1)<<32) / float64(ci.FreqHz)
			fmt.Printf(" (wraps every %.1f s)", wrapS)
		}
		fmt.Println()
	}
	dec.OnSample = func(s report.Sample) {
		stats.add(s)
		sampleCount++
		if *verbose {
			fmt.Printf("  %-14s %10d cycles  %8d us\n", metricName(s.Metric), s.Cycles, s.US)
		}
		if *every > 0 && sampleCount%*every == 0 {
			stats.print(os.Stdout)
		}
	}

	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			dec.Feed(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
			break
		}
	}

	stats.print(os.Stdout)
	fmt.Printf("frames: %d decoded, %d dropped, %d resyncs\n",
		dec.Decoded, dec.Dropped, dec.Resyncs)
}

func openSource() (io.ReadCloser, error) {
	if *replay != "" {
		return os.Open(*replay)
	}

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, err
	}
	return port, nil
}
