package report

// CRC16 calculates the checksum protecting a report frame body. Same
// polynomial arrangement the Klipper MCU protocol uses, which keeps the
// per-byte work down to shifts and xors with no lookup table to hold in
// flash.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		b = b ^ uint8(crc&0xFF)
		b = b ^ (b << 4)
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}
