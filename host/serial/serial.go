package serial

import (
	"io"
)

// Port is the serial connection to a board running the bench firmware.
// The abstraction exists so the report collector can also be fed from a
// recorded file or an in-memory stream in tests.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored by USB CDC boards like the RP2040)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the bench firmware's
// serial setup.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // ESP32 UART rate; USB CDC ignores it
		ReadTimeout: 500,    // keep reads snappy so Ctrl-C is responsive
	}
}
