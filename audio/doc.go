// SPDX-License-Identifier: EPL-2.0

// Package audio defines the in-memory PCM model the splitter operates
// on: a Format (sample rate, channel count, bit depth) and a Buffer of
// interleaved 16-bit samples, plus buffer-level downmix and resample
// helpers and a registry of format decoders.
//
// Buffers are whole recordings, not streams. The splitter always has
// the complete source in memory before synthesis starts, so decoders
// (see the formats subpackages) decode an entire input into one Buffer.
//
// # Time and frames
//
// Positions and durations are expressed in milliseconds and mapped to
// frame offsets with floor division:
//
//	frames = ms * sampleRate / 1000
//
// The mapping is monotonic, so clipping an interval to the buffer's
// DurationMs always lands inside the buffer.
//
// # Silence
//
// Silence allocates an all-zero buffer of a given format and duration:
//
//	buf := audio.Silence(src.Format, src.DurationMs())
package audio
