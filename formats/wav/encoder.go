// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/diasplit/audio"
)

// Encode writes buf to w as a 16-bit PCM WAV file. w must support
// seeking because the RIFF chunk sizes are patched once the sample
// data is written.
func Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if len(buf.Data) == 0 {
		return ErrNoAudioData
	}

	enc := gowav.NewEncoder(w, buf.Format.SampleRate, 16, buf.Format.Channels, 1)

	data := make([]int, len(buf.Data))
	for i, s := range buf.Data {
		data[i] = int(s)
	}

	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Format.Channels,
			SampleRate:  buf.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}

	return nil
}
