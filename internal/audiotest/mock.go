// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic PCM buffers for tests.
package audiotest

import (
	"math"

	"github.com/ik5/diasplit/audio"
)

// NewBuffer creates a buffer of totalFrames frames whose samples come
// from waveform(frame, channel).
func NewBuffer(sampleRate, channels, totalFrames int, waveform func(frame, channel int) int16) *audio.Buffer {
	buf := &audio.Buffer{
		Format: audio.PCM16(sampleRate, channels),
		Data:   make([]int16, totalFrames*channels),
	}

	for frame := range totalFrames {
		for ch := range channels {
			buf.Data[frame*channels+ch] = waveform(frame, ch)
		}
	}

	return buf
}

// NewSilentBuffer creates an all-zero buffer.
func NewSilentBuffer(sampleRate, channels, totalFrames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return 0
	})
}

// NewConstantBuffer creates a buffer where every sample holds value.
func NewConstantBuffer(sampleRate, channels, totalFrames int, value int16) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return value
	})
}

// NewSineBuffer creates a buffer holding a sine wave at frequency Hz
// with the given peak amplitude.
func NewSineBuffer(sampleRate, channels, totalFrames int, frequency float64, amplitude int16) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// NewRampBuffer creates a buffer whose sample value equals its frame
// index (wrapping at int16 range), handy for asserting exact copy
// offsets.
func NewRampBuffer(sampleRate, channels, totalFrames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return int16(frame % 32768)
	})
}
