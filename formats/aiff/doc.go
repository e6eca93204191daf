// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding for the splitter.
//
// This package uses github.com/go-audio/aiff. Only 16-bit PCM is
// supported, matching the splitter's buffer model.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	buf, err := decoder.Decode(file)
package aiff
