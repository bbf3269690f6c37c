package report

import "testing"

func TestCRC16Consistency(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	if CRC16(data) != CRC16(data) {
		t.Error("CRC16 not deterministic")
	}
	if CRC16(nil) != 0xFFFF {
		t.Errorf("CRC16 of empty input = %04X, want FFFF", CRC16(nil))
	}
}

func TestCRC16Different(t *testing.T) {
	crc1 := CRC16([]byte{0x01, 0x02, 0x03})
	crc2 := CRC16([]byte{0x01, 0x02, 0x04})
	if crc1 == crc2 {
		t.Errorf("CRC collision on adjacent inputs: %04X", crc1)
	}
}

func TestRoundTripCounterInfo(t *testing.T) {
	frame := AppendCounterInfo(nil, CounterInfo{Bits: 32, FreqHz: 240_000_000})

	var got CounterInfo
	d := NewDecoder()
	d.OnCounterInfo = func(ci CounterInfo) { got = ci }
	d.Feed(frame)

	if d.Decoded != 1 || d.Dropped != 0 {
		t.Fatalf("decoded %d dropped %d, want 1/0", d.Decoded, d.Dropped)
	}
	if got.Bits != 32 || got.FreqHz != 240_000_000 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestRoundTripSamples(t *testing.T) {
	testCases := []Sample{
		{Metric: MetricNowOverhead, Cycles: 6, US: 0},
		{Metric: MetricDivConvert, Cycles: 240_000_000, US: 1_000_000},
		{Metric: MetricFixedConvert, Cycles: 1<<40 + 17, US: 1 << 20},
		{Metric: MetricBusyLoop, Cycles: 0, US: 0},
	}

	var frames []byte
	for _, s := range testCases {
		frames = AppendSample(frames, s)
	}

	var got []Sample
	d := NewDecoder()
	d.OnSample = func(s Sample) { got = append(got, s) }
	d.Feed(frames)

	if len(got) != len(testCases) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(testCases))
	}
	for i, want := range testCases {
		if got[i] != want {
			t.Errorf("sample %d: got %+v, want %+v", i, got[i], want)
		}
	}
}

func TestDecoderFragmentedInput(t *testing.T) {
	frame := AppendSample(nil, Sample{Metric: MetricSensorRead, Cycles: 12345, US: 51})

	d := NewDecoder()
	var got []Sample
	d.OnSample = func(s Sample) { got = append(got, s) }

	// Feed one byte at a time, as a slow serial link would.
	for _, b := range frame {
		d.Feed([]byte{b})
	}

	if len(got) != 1 || got[0].Cycles != 12345 {
		t.Fatalf("fragmented feed decoded %v", got)
	}
}

func TestDecoderRejectsCorruptCRC(t *testing.T) {
	frame := AppendSample(nil, Sample{Metric: 1, Cycles: 1000, US: 1})
	frame[len(frame)-1] ^= 0xFF // corrupt the CRC

	d := NewDecoder()
	d.OnSample = func(Sample) { t.Error("corrupt frame delivered") }
	d.Feed(frame)

	if d.Dropped == 0 {
		t.Error("corrupt frame not counted as dropped")
	}
}

func TestDecoderResyncsAfterGarbage(t *testing.T) {
	good := AppendSample(nil, Sample{Metric: 2, Cycles: 777, US: 3})

	// Joined mid-stream: garbage, a good frame, torn frame remnants,
	// then another good frame to recover on.
	stream := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	stream = append(stream, good...)
	stream = append(stream, 0x00, 0x13)
	stream = append(stream, good...)

	var got []Sample
	d := NewDecoder()
	d.OnSample = func(s Sample) { got = append(got, s) }
	d.Feed(stream)

	if len(got) < 1 {
		t.Fatalf("no samples recovered from dirty stream")
	}
	for _, s := range got {
		if s.Cycles != 777 {
			t.Errorf("recovered sample corrupted: %+v", s)
		}
	}
	if d.Resyncs == 0 {
		t.Error("decoder never recorded a resync")
	}
}
