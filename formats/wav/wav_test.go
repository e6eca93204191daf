// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/diasplit/audio"
)

// createWAVFile builds a minimal canonical WAV file in memory.
func createWAVFile(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := uint16(numChannels) * uint16(bits/8)
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300}
	data := createWAVFile(8000, 1, 16, samples)

	buf, err := (Decoder{}).Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if buf.Format.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", buf.Format.SampleRate)
	}
	if buf.Format.Channels != 1 {
		t.Errorf("Channels = %d, want 1", buf.Format.Channels)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("len(Data) = %d, want %d", len(buf.Data), len(samples))
	}
	for i := range samples {
		if buf.Data[i] != samples[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], samples[i])
		}
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	samples := []int16{10, 20, 30, 40}
	data := createWAVFile(44100, 2, 16, samples)

	buf, err := (Decoder{}).Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if buf.Format.Channels != 2 {
		t.Errorf("Channels = %d, want 2", buf.Format.Channels)
	}
	if buf.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", buf.Frames())
	}
}

func TestDecoder_NotWav(t *testing.T) {
	t.Parallel()

	_, err := (Decoder{}).Decode(bytes.NewReader([]byte("definitely not a RIFF file")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_RejectsNon16Bit(t *testing.T) {
	t.Parallel()

	data := createWAVFile(8000, 1, 8, []int16{1, 2, 3})
	_, err := (Decoder{}).Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrOnlyPCM16bitSupported) {
		t.Errorf("Decode() error = %v, want ErrOnlyPCM16bitSupported", err)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	src := &audio.Buffer{
		Format: audio.PCM16(16000, 1),
		Data:   []int16{0, 1000, -1000, 32767, -32768, 5},
	}

	path := filepath.Join(t.TempDir(), "roundtrip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := Encode(f, src); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer in.Close()

	got, err := (Decoder{}).Decode(in)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.Format != src.Format {
		t.Errorf("Format = %+v, want %+v", got.Format, src.Format)
	}
	if len(got.Data) != len(src.Data) {
		t.Fatalf("len(Data) = %d, want %d", len(got.Data), len(src.Data))
	}
	for i := range src.Data {
		if got.Data[i] != src.Data[i] {
			t.Errorf("Data[%d] = %d, want %d", i, got.Data[i], src.Data[i])
		}
	}
}

func TestEncode_EmptyBuffer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	empty := &audio.Buffer{Format: audio.PCM16(8000, 1)}
	if err := Encode(f, empty); !errors.Is(err, ErrNoAudioData) {
		t.Errorf("Encode() error = %v, want ErrNoAudioData", err)
	}
}
