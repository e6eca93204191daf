// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/diasplit/audio"
)

// pcmReader is the part of gomp3.Decoder the decoder needs; split out
// to allow testing without real MP3 data.
type pcmReader interface {
	io.Reader
	SampleRate() int
}

type Decoder struct{}

// Decode reads an entire MP3 stream into a buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return readAll(dec)
}

func readAll(dec pcmReader) (*audio.Buffer, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 samples: %w", err)
	}

	// go-mp3 yields 16-bit little-endian PCM, stereo interleaved
	samples := len(raw) / 2
	data := make([]int16, samples)
	for i := range samples {
		low := uint16(raw[2*i])
		high := uint16(raw[2*i+1])
		data[i] = int16(low | high<<8)
	}

	return &audio.Buffer{
		Format: audio.PCM16(dec.SampleRate(), 2),
		Data:   data,
	}, nil
}
