//go:build rp2040

// PIO timebase self-check for RP2040 boards.
//
// A two-instruction PIO program toggles a pin at a rate derived from the
// system clock through a known divider. The program then times a fixed
// number of periods with fasttime and compares against the expected
// figure: if the two disagree by more than the polling slop, either the
// configured counter frequency or the system clock setup is wrong.
//
// Wiring: none. GPIO15 is driven by PIO and read back through its own
// input buffer.
package main

import (
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"fasttime"
)

const (
	squarePin = machine.GPIO15

	// 125 MHz sysclk / 1250 = 100 kHz PIO clock. Each period is four
	// PIO cycles (two SET instructions, one delay slot each), i.e.
	// 40 us, comfortably above the 1 us TIMER resolution.
	clkDiv          = 1250
	cyclesPerPeriod = 4
	sysClkHz        = 125_000_000

	periods = 1000
)

// buildSquareWaveProgram assembles the free-running toggle loop.
func buildSquareWaveProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Set(rp2pio.SetDestPins, 1).Delay(1).Encode(), // 0: set pins, 1 [1]
		asm.Set(rp2pio.SetDestPins, 0).Delay(1).Encode(), // 1: set pins, 0 [1]
		// .wrap
	}
}

func main() {
	time.Sleep(2 * time.Second)
	println("fasttime PIO timebase self-check")

	pio := rp2pio.PIO0
	sm := pio.StateMachine(0)
	sm.TryClaim()

	program := buildSquareWaveProgram()
	offset, err := pio.AddProgram(program, 0)
	if err != nil {
		println("failed to load PIO program:", err.Error())
		return
	}

	squarePin.Configure(machine.PinConfig{Mode: pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(squarePin, 1)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(clkDiv, 0)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)

	cvt := fasttime.NewDefaultUSConverter()
	expectedUS := uint64(periods) * cyclesPerPeriod * clkDiv * 1_000_000 / sysClkHz

	for {
		measured := timePeriods(cvt)

		println("expected:", expectedUS, "us, measured:", measured, "us")
		if diff(measured, expectedUS)*100 > expectedUS {
			println("MISMATCH over 1% - check frequency configuration")
		} else {
			println("OK")
		}
		time.Sleep(5 * time.Second)
	}
}

// timePeriods counts rising edges on the square wave and returns the
// elapsed microseconds for the full run.
func timePeriods(cvt fasttime.USConverter) uint64 {
	waitRisingEdge()
	start := fasttime.Now()
	for i := 0; i < periods; i++ {
		waitRisingEdge()
	}
	return cvt.ToUS(fasttime.CyclesBetween(start, fasttime.Now()))
}

func waitRisingEdge() {
	for squarePin.Get() {
	}
	for !squarePin.Get() {
	}
}

func diff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
