package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/diasplit/audio"
)

// pcmReader is the part of aiff.Decoder the decoder needs; split out
// to allow testing without real AIFF data.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads an entire AIFF stream into a buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return readAll(dec, format)
}

func readAll(dec pcmReader, format *goaudio.Format) (*audio.Buffer, error) {
	var data []int16
	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096),
		Format: format,
	}

	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			data = append(data, int16(v))
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &audio.Buffer{
		Format: audio.PCM16(format.SampleRate, format.NumChannels),
		Data:   data,
	}, nil
}
