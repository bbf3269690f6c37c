// Package fasttime provides ultra-low-overhead cycle-based timing for
// TinyGo microcontrollers, with wrap-safe comparisons and division-free
// conversion to wall-clock units.
//
// The package reads the fastest monotonic counter the target offers and
// hides the architecture differences behind one Timestamp type. As a rule
// of thumb for a single call on an ESP32-class part:
//
//	time.Now() / machine timers ..... ~0.4-0.9 us
//	ESP-IDF esp_timer style APIs .... ~0.5-0.7 us
//	direct counter read (this pkg) .. ~4-25 ns
//
// Numbers vary by board, toolchain and optimization level. Run a quick
// micro-benchmark on your own target if you need exact figures; the
// firmware under targets/ does exactly that.
//
// # Wrap behavior
//
// On ESP32 Xtensa parts the counter is the 32-bit CCOUNT register, which
// wraps about every 17.9 s at 240 MHz. Before and CyclesBetween stay
// correct across a wrap as long as the two timestamps were captured less
// than half the counter range apart. Beyond that the results are garbage;
// no assertion guards the bound. On targets with a 64-bit counter
// (ESP32-C3, RP2040/RP2350, host builds) a wrap cannot occur within any
// realistic program run.
//
// # Frequency assumptions
//
// Conversions from cycles to time assume a fixed counter frequency. If
// DVFS or light-sleep clock changes are enabled in your firmware, the
// converted values drift; prefer a platform wall-clock timer for real
// time in that case, or keep measurements in cycles and only convert at
// the boundary.
//
// CyclesToUS and CyclesToMS perform a 64-bit division, which costs dozens
// of cycles on most MCUs. In hot loops use a USConverter instead: it
// precomputes a fixed-point reciprocal once and converts with a single
// multiply and shift.
package fasttime
