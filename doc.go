// SPDX-License-Identifier: EPL-2.0

// Package diasplit separates a multi-speaker recording into one track
// per speaker, driven by a diarization transcript.
//
// Given the recording and a list of (speaker, start, end) segments, it
// produces for each distinct speaker a full-length audio file that
// reproduces the original during that speaker's segments and holds
// silence everywhere else. All outputs keep the source's duration and
// format, so they play back in sync with the recording and with each
// other.
//
// # Quick Start
//
//	src, err := diasplit.DecodeFile("meeting.wav")
//	if err != nil {
//		// handle error
//	}
//
//	segs, err := segment.LoadFile("meeting.json")
//	if err != nil {
//		// handle error
//	}
//
//	paths, err := diasplit.Split(src, segs, "meeting.wav", ".")
//	// paths: ["meeting-SPEAKER_00.wav", "meeting-SPEAKER_01.wav", ...]
//
// # Input Formats
//
// DecodeFile routes on the file extension:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always 16-bit PCM WAV.
//
// # Diarization Input
//
// The segment package loads the JSON transcript schema
// ({"segments": [{"speaker", "start", "end", "text"}]}) with
// "HH:MM:SS,mmm" timestamps. The diarizer package can obtain the same
// segments from a diarization HTTP service instead.
//
// # Pieces
//
// For more control, use the subpackages directly:
//
//	builder := track.NewBuilder(track.WithOverlapPolicy(track.OverlapFirstWins))
//	tracks := builder.Build(src, segs)
//	for _, tr := range tracks {
//		f, _ := os.Create(tr.Speaker + ".wav")
//		wav.Encode(f, tr.Buffer)
//		f.Close()
//	}
//
// Output files are written to a temporary file first and renamed into
// place, so an encode failure never leaves a half-written track behind.
package diasplit
