// SPDX-License-Identifier: EPL-2.0

// Package segment models diarization output: speaker-attributed time
// intervals, and a loader for the JSON document that carries them.
//
// The input document looks like:
//
//	{
//	  "segments": [
//	    {"speaker": "SPEAKER_00", "start": "00:00:00,000", "end": "00:00:02,000", "text": "hello"},
//	    {"speaker": "SPEAKER_01", "start": "00:00:02,000", "end": "00:00:04,000"}
//	  ]
//	}
//
// speaker, start and end are mandatory; text is optional and carried
// through untouched. Timestamps use the "HH:MM:SS,mmm" form decoded by
// the timestamp package.
//
// The loader is fail-fast: it stops at the first structural problem and
// reports it, since a half-valid diarization file is not actionable for
// a batch tool. It performs no reordering, no deduplication and no
// overlap checks — segments come back in input order, and overlap
// policy belongs to the track builder.
//
// # Errors
//
// Load distinguishes three failure kinds, all matchable with errors.As:
//
//   - *SchemaError: the document shape is wrong (missing "segments",
//     missing mandatory fields, wrong types)
//   - *FormatError: a timestamp string does not parse; carries the
//     offending entry index
//   - *RangeError: a decoded segment has start >= end
package segment
