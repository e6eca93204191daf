// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding for the splitter.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// float samples; they are converted to the splitter's 16-bit buffer
// model with clamping.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	buf, err := decoder.Decode(file)
package vorbis
