// SPDX-License-Identifier: EPL-2.0

// Package diarizer talks to an external speaker-diarization service.
//
// The splitter itself never infers who speaks when; that belongs to a
// diarization backend (pyannote, WhisperX and friends) running behind
// an HTTP sidecar. This package defines the Provider interface and an
// HTTP implementation that posts the audio as multipart form data to
// the sidecar's /diarize endpoint and converts the response into a
// segment.Set.
//
//	p := diarizer.NewHTTPProvider(diarizer.Config{BaseURL: "http://localhost:8388"})
//	set, err := p.Diarize(ctx, diarizer.Request{AudioPath: "meeting.wav"})
//
// The sidecar replies with second-resolution floats:
//
//	{"segments": [{"speaker": "SPEAKER_00", "start": 0.5, "end": 2.25, "text": "..."}],
//	 "num_speakers": 2}
//
// Times are converted to milliseconds (round half up).
package diarizer
