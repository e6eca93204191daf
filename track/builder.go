// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ik5/diasplit/audio"
	"github.com/ik5/diasplit/segment"
)

// OverlapPolicy decides who receives audio when segments overlap in
// time. See the package documentation.
type OverlapPolicy int

const (
	// OverlapDuplicate copies contested ranges into every overlapping
	// speaker's track.
	OverlapDuplicate OverlapPolicy = iota
	// OverlapFirstWins assigns each instant to the segment that first
	// covers it in input order.
	OverlapFirstWins
)

func (p OverlapPolicy) String() string {
	switch p {
	case OverlapDuplicate:
		return "duplicate"
	case OverlapFirstWins:
		return "first-wins"
	default:
		return fmt.Sprintf("OverlapPolicy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name ("duplicate" or "first-wins") to
// an OverlapPolicy.
func ParsePolicy(name string) (OverlapPolicy, error) {
	switch name {
	case "duplicate":
		return OverlapDuplicate, nil
	case "first-wins":
		return OverlapFirstWins, nil
	default:
		return 0, fmt.Errorf("unknown overlap policy %q", name)
	}
}

// SpeakerTrack is the synthesized output for one speaker: the source
// audio during that speaker's segments, silence everywhere else, always
// spanning the full source duration.
type SpeakerTrack struct {
	Speaker string
	Buffer  *audio.Buffer
}

// Builder synthesizes speaker tracks. The zero value is usable; use
// NewBuilder to set options.
type Builder struct {
	policy OverlapPolicy
	log    zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithOverlapPolicy sets the cross-segment overlap policy.
func WithOverlapPolicy(p OverlapPolicy) Option {
	return func(b *Builder) { b.policy = p }
}

// WithLogger sets the logger used for skipped-segment warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Builder) { b.log = log }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		policy: OverlapDuplicate,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces one track per distinct speaker in set, in first-seen
// order. src is only read. An empty set yields no tracks.
//
// Every returned track has exactly src's frame count; a speaker whose
// segments were all skipped still gets a full-length silent track.
func (b *Builder) Build(src *audio.Buffer, set segment.Set) []SpeakerTrack {
	speakers := set.Speakers()
	if len(speakers) == 0 {
		return nil
	}

	tracks := make([]SpeakerTrack, len(speakers))
	for i, label := range speakers {
		tracks[i] = SpeakerTrack{
			Speaker: label,
			Buffer: &audio.Buffer{
				Format: src.Format,
				Data:   make([]int16, len(src.Data)),
			},
		}
	}

	if b.policy == OverlapFirstWins {
		b.buildFirstWins(src, set, speakers, tracks)
		return tracks
	}

	// Tracks share no memory for writing, one goroutine each.
	var wg sync.WaitGroup
	for i, label := range speakers {
		wg.Add(1)
		go func(dst *audio.Buffer, segs segment.Set) {
			defer wg.Done()
			b.fillTrack(src, dst, segs)
		}(tracks[i].Buffer, set.BySpeaker(label))
	}
	wg.Wait()

	return tracks
}

// fillTrack copies segs into dst in input order; a later segment
// overwrites an earlier one where they overlap.
func (b *Builder) fillTrack(src, dst *audio.Buffer, segs segment.Set) {
	durationMs := src.DurationMs()

	for _, seg := range segs {
		if b.skipOutside(seg, durationMs) {
			continue
		}
		dst.CopyRange(src, seg.Start, seg.End)
	}
}

// buildFirstWins walks all segments in global input order, claiming
// frames as it goes. A claimed frame is never rewritten.
func (b *Builder) buildFirstWins(src *audio.Buffer, set segment.Set, speakers []string, tracks []SpeakerTrack) {
	bySpeaker := make(map[string]*audio.Buffer, len(speakers))
	for i, label := range speakers {
		bySpeaker[label] = tracks[i].Buffer
	}

	durationMs := src.DurationMs()
	claimed := make([]bool, src.Frames())
	ch := src.Format.Channels

	for _, seg := range set {
		if b.skipOutside(seg, durationMs) {
			continue
		}

		dst := bySpeaker[seg.Speaker]
		from := src.FrameAt(seg.Start)
		to := src.FrameAt(seg.End)

		for frame := from; frame < to; frame++ {
			if claimed[frame] {
				continue
			}
			claimed[frame] = true
			copy(dst.Data[frame*ch:(frame+1)*ch], src.Data[frame*ch:(frame+1)*ch])
		}
	}
}

// skipOutside reports whether seg lies entirely beyond the recording,
// logging the accepted anomaly. Truncation of partially covered
// segments happens during the copy itself.
func (b *Builder) skipOutside(seg segment.Segment, durationMs int64) bool {
	if seg.Start < durationMs {
		return false
	}

	b.log.Warn().
		Str("speaker", seg.Speaker).
		Int64("start_ms", seg.Start).
		Int64("end_ms", seg.End).
		Int64("audio_ms", durationMs).
		Msg("segment lies outside the recording, skipping")

	return true
}
