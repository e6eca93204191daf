// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockPCMReader simulates the go-audio aiff decoder.
type mockPCMReader struct {
	samples []int
	offset  int
	fail    bool
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{SampleRate: 44100, NumChannels: 2}
	src := &mockPCMReader{samples: []int{0, 100, -100, 32767, -32768, 7}}

	buf, err := readAll(src, format)
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if buf.Format.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", buf.Format.SampleRate)
	}
	if buf.Format.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Format.Channels)
	}

	want := []int16{0, 100, -100, 32767, -32768, 7}
	if len(buf.Data) != len(want) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestReadAll_ReadFailure(t *testing.T) {
	t.Parallel()

	format := &goaudio.Format{SampleRate: 8000, NumChannels: 1}
	if _, err := readAll(&mockPCMReader{fail: true}, format); err == nil {
		t.Error("readAll() error = nil, want read error")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}
