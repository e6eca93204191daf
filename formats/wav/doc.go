// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and encoding for the splitter.
//
// It wraps github.com/go-audio/wav for both directions. Only 16-bit
// PCM is supported: that is the depth the splitter's buffer model
// carries, and the dominant WAV variant in the wild. Mono and stereo
// at any sample rate are accepted.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	buf, err := decoder.Decode(file)
//
// Decode reads the whole file into an audio.Buffer. The go-audio
// decoder needs an io.ReadSeeker; plain readers are buffered into
// memory first.
//
// # Encoding
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, buf)
//
// Encode writes a complete PCM WAV file. The destination must be an
// io.WriteSeeker because go-audio patches chunk sizes after the data
// is written; files qualify, pipes do not.
package wav
