// SPDX-License-Identifier: EPL-2.0

package segment

// Segment is one diarization interval: the half-open time range
// [Start, End) in milliseconds, attributed to a speaker label.
type Segment struct {
	// Speaker is an opaque label; no fixed enumeration is assumed.
	Speaker string `json:"speaker"`
	// Start and End are millisecond offsets from the start of the
	// recording. Start < End always holds for loaded segments.
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	// Text is an optional transcript, never interpreted here.
	Text string `json:"text,omitempty"`
}

// DurationMs returns the length of the interval in milliseconds.
func (s Segment) DurationMs() int64 { return s.End - s.Start }

// Set is an ordered collection of segments. Order reflects the input
// document, not time: segments may be unsorted and may overlap, both
// within one speaker and across speakers.
type Set []Segment

// Speakers returns the distinct speaker labels in first-seen order.
func (s Set) Speakers() []string {
	seen := make(map[string]struct{}, 4)
	var labels []string

	for _, seg := range s {
		if _, ok := seen[seg.Speaker]; ok {
			continue
		}
		seen[seg.Speaker] = struct{}{}
		labels = append(labels, seg.Speaker)
	}

	return labels
}

// BySpeaker returns the segments attributed to label, preserving input
// order.
func (s Set) BySpeaker(label string) Set {
	var out Set
	for _, seg := range s {
		if seg.Speaker == label {
			out = append(out, seg)
		}
	}
	return out
}
