package report

// Decoder consumes a raw serial byte stream and fires a callback per
// decoded record. Corrupted input (bad CRC, implausible length, torn
// frames from plugging in mid-stream) drops the decoder out of sync; it
// recovers by scanning for the next sync byte, so a stream can be
// joined at any point.
type Decoder struct {
	OnCounterInfo func(CounterInfo)
	OnSample      func(Sample)

	buf      []byte
	synced   bool
	Dropped  int // frames discarded for CRC or framing errors
	Resyncs  int // times the scanner had to hunt for a sync byte
	Decoded  int // frames delivered to callbacks
	Unknowns int // frames with an unrecognized kind (skipped, counted)
}

// NewDecoder returns a decoder that starts unsynchronized and locks on
// at the first sync byte it sees.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends data to the internal buffer and decodes every complete
// frame in it. Partial frames are kept for the next call.
func (d *Decoder) Feed(data []byte) {
	d.buf = append(d.buf, data...)

	for len(d.buf) > 0 {
		if !d.synced {
			// Hunt for a sync byte, discarding garbage before it.
			idx := -1
			for i, b := range d.buf {
				if b == SyncByte {
					idx = i
					break
				}
			}
			if idx < 0 {
				d.buf = d.buf[:0]
				return
			}
			d.buf = d.buf[idx:]
			d.synced = true
			d.Resyncs++
		}

		// Stray bytes between frames force a rescan.
		if d.buf[0] != SyncByte {
			d.synced = false
			d.Dropped++
			continue
		}

		// Need the length byte to size the frame.
		if len(d.buf) < 2 {
			return
		}
		frameLen := int(d.buf[1])
		if frameLen < frameMin || frameLen > frameMax {
			d.desync()
			continue
		}
		if len(d.buf) < 1+frameLen {
			return
		}

		body := d.buf[1 : 1+frameLen-trailerSize]
		crcWant := uint16(d.buf[frameLen-1])<<8 | uint16(d.buf[frameLen])
		if CRC16(body) != crcWant {
			d.desync()
			continue
		}

		if err := d.dispatch(body[1], body[headerSize:]); err != nil {
			d.Dropped++
		} else {
			d.Decoded++
		}
		d.buf = d.buf[1+frameLen:]
	}
}

// desync drops the current sync byte and rescans from the next byte.
func (d *Decoder) desync() {
	d.buf = d.buf[1:]
	d.synced = false
	d.Dropped++
}

func (d *Decoder) dispatch(kind uint8, payload []byte) error {
	switch kind {
	case KindCounterInfo:
		if len(payload) < 2 {
			return ErrTruncatedVarint
		}
		freq, _, err := readUvarint(payload[1:])
		if err != nil {
			return err
		}
		if d.OnCounterInfo != nil {
			d.OnCounterInfo(CounterInfo{Bits: payload[0], FreqHz: freq})
		}
	case KindSample:
		if len(payload) < 3 {
			return ErrTruncatedVarint
		}
		cycles, n, err := readUvarint(payload[1:])
		if err != nil {
			return err
		}
		us, _, err := readUvarint(payload[1+n:])
		if err != nil {
			return err
		}
		if d.OnSample != nil {
			d.OnSample(Sample{Metric: payload[0], Cycles: cycles, US: us})
		}
	default:
		d.Unknowns++
	}
	return nil
}
