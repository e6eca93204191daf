// SPDX-License-Identifier: EPL-2.0

// Package timestamp converts between the diarization clock format and
// millisecond offsets.
//
// The textual form is "HH:MM:SS,mmm" — the comma-separated millisecond
// notation used by SRT subtitles and by most diarization tooling. Hours
// are unbounded (two digits minimum), minutes and seconds live in
// [0,59] and milliseconds in [0,999].
//
//	ms, err := timestamp.Parse("01:02:03,450")
//	// ms == 3723450
//
//	timestamp.Format(3723450)
//	// "01:02:03,450"
//
// Parse and Format are exact inverses: Parse(Format(x)) == x for every
// non-negative x, and Format(Parse(t)) returns t in canonical form.
package timestamp
