// SPDX-License-Identifier: EPL-2.0

package diarizer

import (
	"context"

	"github.com/ik5/diasplit/segment"
)

// Request holds the parameters of one diarization call.
type Request struct {
	// AudioPath is the audio file to diarize.
	AudioPath string
	// NumSpeakers is the exact number of speakers (0 = auto-detect).
	NumSpeakers int
	// MinSpeakers is the minimum expected number of speakers.
	MinSpeakers int
	// MaxSpeakers is the maximum expected number of speakers.
	MaxSpeakers int
	// Language is the expected language of the audio (e.g. "en").
	Language string
}

// Provider is a diarization backend.
type Provider interface {
	// Name identifies the backend.
	Name() string
	// IsAvailable reports whether the backend is reachable.
	IsAvailable(ctx context.Context) bool
	// Diarize sends audio for speaker diarization. The returned set is
	// in the backend's output order and ready for the track builder.
	Diarize(ctx context.Context, req Request) (segment.Set, error)
}
