// SPDX-License-Identifier: EPL-2.0

// Package track synthesizes per-speaker audio tracks from a source
// recording and its diarization segments.
//
// For every distinct speaker label (in first-seen order) the builder
// allocates a silent buffer of exactly the source's length, then copies
// the source samples covering that speaker's segments into it at the
// same offsets. The result plays back in sync with the source: audio
// where the speaker talks, silence everywhere else.
//
// Segments are processed in input order, never sorted. When two
// segments of the same speaker overlap, the one appearing later in the
// input wins for the contested range. Segments reaching past the end of
// the recording are truncated; segments entirely outside it are skipped
// with a warning on the builder's logger. None of these conditions is
// an error — structurally invalid input is rejected by the segment
// loader before a builder ever sees it.
//
// # Overlap across speakers
//
// The diarization format has no overlap marker, so simultaneous speech
// is a policy decision:
//
//   - OverlapDuplicate (default): every overlapping speaker's track
//     receives the source audio for the contested range. Tracks are
//     independent, so they are built concurrently.
//   - OverlapFirstWins: each instant belongs to the segment that first
//     covers it in input order; later segments — same speaker or not —
//     cannot reclaim it. This needs a global claim pass and runs
//     sequentially.
//
// # Usage
//
//	builder := track.NewBuilder(track.WithLogger(log))
//	tracks := builder.Build(src, segments)
//	for _, tr := range tracks {
//		// tr.Speaker, tr.Buffer
//	}
package track
