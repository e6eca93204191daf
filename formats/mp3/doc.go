// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding for the splitter.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 input
// into a single audio.Buffer. go-mp3 always produces 16-bit stereo
// output, so the resulting buffer is stereo at the stream's sample
// rate.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	buf, err := decoder.Decode(file)
package mp3
