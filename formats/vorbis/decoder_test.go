package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockFloatReader simulates oggvorbis.Reader output.
type mockFloatReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
}

func (m *mockFloatReader) SampleRate() int { return m.sampleRate }
func (m *mockFloatReader) Channels() int   { return m.channels }

func (m *mockFloatReader) Read(dst []float32) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(dst, m.samples[m.offset:])
	m.offset += n
	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := &mockFloatReader{
		sampleRate: 22050,
		channels:   2,
		samples:    []float32{0, 0.5, -0.5, 1.0, -1.0, 2.0}, // last one clamps
	}

	buf, err := readAll(src)
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if buf.Format.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", buf.Format.SampleRate)
	}
	if buf.Format.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Format.Channels)
	}

	want := []int16{0, 16383, -16383, 32767, -32767, 32767}
	if len(buf.Data) != len(want) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestReadAll_Empty(t *testing.T) {
	t.Parallel()

	buf, err := readAll(&mockFloatReader{sampleRate: 8000, channels: 1})
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}
	if len(buf.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(buf.Data))
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader([]byte("not an ogg stream")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}
