// Package report defines the wire records the bench firmware emits over
// serial and the host tool consumes. Telemetry is one-way: the MCU
// streams framed records, the host decodes and aggregates them.
//
// Frame layout:
//
//	[sync 0x7E][len][kind][payload...][crc hi][crc lo]
//
// len counts every byte after the sync, including itself and the CRC.
// The CRC16 covers len, kind and payload. Integer payload fields use a
// 7-bit varint so cycle counts stay compact at any magnitude.
package report

const (
	// SyncByte marks the start of a frame and doubles as the resync
	// anchor after corrupted input.
	SyncByte = 0x7E

	headerSize  = 2 // len + kind
	trailerSize = 2 // crc16
	frameMin    = headerSize + trailerSize
	frameMax    = 64
)

// Record kinds.
const (
	KindCounterInfo = 0x01
	KindSample      = 0x02
)

// Well-known sample metrics emitted by the bench firmware.
const (
	MetricNowOverhead  = 1 // cost of one timestamp capture
	MetricDivConvert   = 2 // cycles->us via division
	MetricFixedConvert = 3 // cycles->us via fixed-point converter
	MetricBusyLoop     = 4 // calibrated busy loop duration
	MetricSensorRead   = 5 // driver read latency (examples/drivers)
)

// CounterInfo describes the counter behind a report stream: its width in
// bits and the frequency conversions were built against. Sent once at
// firmware startup, before any samples.
type CounterInfo struct {
	Bits   uint8
	FreqHz uint64
}

// Sample is one timing measurement: the raw cycle delta and the
// microseconds the firmware derived from it.
type Sample struct {
	Metric uint8
	Cycles uint64
	US     uint64
}

// AppendCounterInfo appends a framed CounterInfo record to dst and
// returns the extended slice. Append-style to keep the firmware's send
// path allocation-free.
func AppendCounterInfo(dst []byte, info CounterInfo) []byte {
	payload := make([]byte, 0, 11)
	payload = append(payload, info.Bits)
	payload = appendUvarint(payload, info.FreqHz)
	return appendFrame(dst, KindCounterInfo, payload)
}

// AppendSample appends a framed Sample record to dst.
func AppendSample(dst []byte, s Sample) []byte {
	payload := make([]byte, 0, 21)
	payload = append(payload, s.Metric)
	payload = appendUvarint(payload, s.Cycles)
	payload = appendUvarint(payload, s.US)
	return appendFrame(dst, KindSample, payload)
}

func appendFrame(dst []byte, kind uint8, payload []byte) []byte {
	frameLen := headerSize + len(payload) + trailerSize
	start := len(dst)

	dst = append(dst, SyncByte, byte(frameLen), kind)
	dst = append(dst, payload...)

	// CRC over everything after the sync byte: len, kind, payload.
	crc := CRC16(dst[start+1:])
	return append(dst, byte(crc>>8), byte(crc))
}
