// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/diasplit/utils"
)

// DownmixMono averages all channels of b into a new mono buffer with
// the same sample rate. A mono input is copied unchanged.
func DownmixMono(b *Buffer) *Buffer {
	ch := b.Format.Channels
	if ch <= 1 {
		out := b.Clone()
		out.Format = PCM16(b.Format.SampleRate, 1)
		return out
	}

	frames := b.Frames()
	out := &Buffer{
		Format: PCM16(b.Format.SampleRate, 1),
		Data:   make([]int16, frames),
	}

	for frame := range frames {
		var sum int32
		for c := range ch {
			sum += int32(b.Data[frame*ch+c])
		}
		out.Data[frame] = int16(sum / int32(ch))
	}

	return out
}

// Resample converts b to targetRate using Catmull-Rom cubic
// interpolation, channel by channel. The same rate returns a copy.
func Resample(b *Buffer, targetRate int) (*Buffer, error) {
	if b.Frames() == 0 {
		return nil, ErrEmptyBuffer
	}
	if targetRate == b.Format.SampleRate {
		return b.Clone(), nil
	}

	ch := b.Format.Channels
	srcFrames := b.Frames()
	ratio := float64(b.Format.SampleRate) / float64(targetRate)
	dstFrames := int(float64(srcFrames) / ratio)
	if dstFrames < 1 {
		dstFrames = 1
	}

	out := &Buffer{
		Format: PCM16(targetRate, ch),
		Data:   make([]int16, dstFrames*ch),
	}

	for frame := range dstFrames {
		pos := float64(frame) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))

		for c := range ch {
			y0 := sampleAt(b, idx-1, c)
			y1 := sampleAt(b, idx, c)
			y2 := sampleAt(b, idx+1, c)
			y3 := sampleAt(b, idx+2, c)

			v := utils.CubicInterpolate(y0, y1, y2, y3, frac)
			out.Data[frame*ch+c] = utils.Float32ToInt16(v)
		}
	}

	return out, nil
}

// sampleAt reads one channel of one frame as float32 in [-1,1],
// clamping the frame index to the buffer edges.
func sampleAt(b *Buffer, frame, channel int) float32 {
	if frame < 0 {
		frame = 0
	}
	if last := b.Frames() - 1; frame > last {
		frame = last
	}
	return utils.Int16ToFloat32(b.Data[frame*b.Format.Channels+channel])
}
