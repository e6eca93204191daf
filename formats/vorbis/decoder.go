package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/diasplit/audio"
	"github.com/ik5/diasplit/utils"
)

// floatReader is the part of oggvorbis.Reader the decoder needs; split
// out to allow testing without real Ogg data.
type floatReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads an entire Ogg Vorbis stream into a buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return readAll(dec)
}

func readAll(dec floatReader) (*audio.Buffer, error) {
	var data []int16
	buf := make([]float32, 4096*dec.Channels())

	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			data = append(data, utils.Float32ToInt16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding ogg vorbis samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &audio.Buffer{
		Format: audio.PCM16(dec.SampleRate(), dec.Channels()),
		Data:   data,
	}, nil
}
