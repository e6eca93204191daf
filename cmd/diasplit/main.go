// SPDX-License-Identifier: EPL-2.0

// Package main is the entry point for the diasplit CLI.
//
// Usage:
//
//	diasplit [flags] <audio-file> [diarization.json]
//
// With a diarization JSON file the tool splits the recording into one
// WAV per speaker. With --diarize it asks a diarization HTTP service
// for the segments instead.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
