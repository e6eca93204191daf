// SPDX-License-Identifier: EPL-2.0

package audio

// Format describes the sample layout of a buffer.
type Format struct {
	// SampleRate in Hz.
	SampleRate int
	// Channels count (1=mono, 2=stereo).
	Channels int
	// BitDepth of the stored samples. Buffers hold int16 data, so this
	// is always 16 for buffers produced by this module.
	BitDepth int
}

// PCM16 returns the canonical 16-bit format for a rate and channel
// count.
func PCM16(sampleRate, channels int) Format {
	return Format{SampleRate: sampleRate, Channels: channels, BitDepth: 16}
}

// FramesIn returns the number of frames covering ms milliseconds,
// rounding down.
func (f Format) FramesIn(ms int64) int {
	return int(ms * int64(f.SampleRate) / 1000)
}

// Buffer is a fully decoded recording: interleaved int16 PCM samples.
// A Buffer handed to the track builder as its source is never mutated.
type Buffer struct {
	Format Format
	// Data holds interleaved samples; len(Data) is a multiple of
	// Format.Channels.
	Data []int16
}

// Silence returns an all-zero buffer of the given format spanning
// durationMs milliseconds.
func Silence(f Format, durationMs int64) *Buffer {
	return &Buffer{
		Format: f,
		Data:   make([]int16, f.FramesIn(durationMs)*f.Channels),
	}
}

// Frames returns the number of sample frames in the buffer.
func (b *Buffer) Frames() int {
	if b.Format.Channels == 0 {
		return 0
	}
	return len(b.Data) / b.Format.Channels
}

// DurationMs returns the buffer length in milliseconds, rounding down.
func (b *Buffer) DurationMs() int64 {
	if b.Format.SampleRate == 0 {
		return 0
	}
	return int64(b.Frames()) * 1000 / int64(b.Format.SampleRate)
}

// FrameAt maps a millisecond offset to a frame index, clamped to the
// buffer bounds.
func (b *Buffer) FrameAt(ms int64) int {
	frame := b.Format.FramesIn(ms)
	if frame < 0 {
		return 0
	}
	if frames := b.Frames(); frame > frames {
		return frames
	}
	return frame
}

// CopyRange copies the samples of src covering [startMs, endMs) into b
// at the same offset, overwriting what was there. Both buffers must
// share a format; the range is clamped to both buffers. It returns the
// number of frames copied.
func (b *Buffer) CopyRange(src *Buffer, startMs, endMs int64) int {
	ch := b.Format.Channels
	from := src.FrameAt(startMs)
	to := src.FrameAt(endMs)

	if max := b.Frames(); to > max {
		to = max
	}
	if from >= to {
		return 0
	}

	copy(b.Data[from*ch:to*ch], src.Data[from*ch:to*ch])
	return to - from
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]int16, len(b.Data))
	copy(data, b.Data)
	return &Buffer{Format: b.Format, Data: data}
}
