package report

import "errors"

var (
	// ErrTruncatedVarint is returned when a payload ends mid-varint.
	ErrTruncatedVarint = errors.New("truncated varint")
	// ErrVarintTooLong is returned when a varint runs past the 10 bytes
	// a 64-bit value can need.
	ErrVarintTooLong = errors.New("varint too long for 64 bits")
)

// appendUvarint appends v in most-significant-group-first 7-bit chunks,
// continuation bit 0x80 on every byte but the last. Small values (the
// common case for microsecond fields) cost one byte.
func appendUvarint(dst []byte, v uint64) []byte {
	for shift := uint(63); shift > 0; shift -= 7 {
		if v>>shift != 0 {
			dst = append(dst, byte(v>>shift)&0x7F|0x80)
		}
	}
	return append(dst, byte(v)&0x7F)
}

// readUvarint decodes one varint from data and returns the value and the
// number of bytes consumed.
func readUvarint(data []byte) (uint64, int, error) {
	var v uint64
	for i, b := range data {
		if i >= 10 {
			return 0, 0, ErrVarintTooLong
		}
		v = v<<7 | uint64(b&0x7F)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrTruncatedVarint
}
