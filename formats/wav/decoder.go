package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/diasplit/audio"
)

type Decoder struct{}

// Decode reads an entire WAV stream into a buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}
	if intBuf == nil || len(intBuf.Data) == 0 {
		return nil, ErrNoAudioData
	}

	data := make([]int16, len(intBuf.Data))
	for i, v := range intBuf.Data {
		data[i] = int16(v)
	}

	return &audio.Buffer{
		Format: audio.PCM16(int(dec.SampleRate), int(dec.NumChans)),
		Data:   data,
	}, nil
}
