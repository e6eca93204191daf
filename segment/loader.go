// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ik5/diasplit/timestamp"
)

// rawDocument mirrors the input schema with pointer fields so that
// absent keys are distinguishable from zero values.
type rawDocument struct {
	Segments *[]rawSegment `json:"segments"`
}

type rawSegment struct {
	Speaker *string `json:"speaker"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
	Text    string  `json:"text"`
}

// Load reads a diarization document from r and returns its segments in
// input order. Validation is fail-fast; see the package documentation
// for the error kinds.
func Load(r io.Reader) (Set, error) {
	var doc rawDocument

	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &SchemaError{Index: -1, Msg: err.Error()}
	}

	if doc.Segments == nil {
		return nil, &SchemaError{Index: -1, Msg: `missing "segments" list`}
	}

	set := make(Set, 0, len(*doc.Segments))
	for i, raw := range *doc.Segments {
		seg, err := decodeSegment(i, raw)
		if err != nil {
			return nil, err
		}
		set = append(set, seg)
	}

	return set, nil
}

// LoadFile is Load over a file path.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open diarization file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func decodeSegment(index int, raw rawSegment) (Segment, error) {
	switch {
	case raw.Speaker == nil:
		return Segment{}, &SchemaError{Index: index, Msg: `missing "speaker"`}
	case raw.Start == nil:
		return Segment{}, &SchemaError{Index: index, Msg: `missing "start"`}
	case raw.End == nil:
		return Segment{}, &SchemaError{Index: index, Msg: `missing "end"`}
	}

	start, err := timestamp.Parse(*raw.Start)
	if err != nil {
		return Segment{}, &FormatError{Index: index, Field: "start", Err: err}
	}

	end, err := timestamp.Parse(*raw.End)
	if err != nil {
		return Segment{}, &FormatError{Index: index, Field: "end", Err: err}
	}

	if start >= end {
		return Segment{}, &RangeError{Index: index, Start: start, End: end}
	}

	return Segment{
		Speaker: *raw.Speaker,
		Start:   start,
		End:     end,
		Text:    raw.Text,
	}, nil
}
