// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ik5/diasplit/timestamp"
)

// document is the serialized form of a Set, timestamps spelled out in
// the "HH:MM:SS,mmm" clock format the loader consumes.
type document struct {
	Segments []documentSegment `json:"segments"`
}

type documentSegment struct {
	Speaker string `json:"speaker"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Text    string `json:"text,omitempty"`
}

// Write serializes set to w in the diarization document schema. The
// output round-trips through Load.
func Write(w io.Writer, set Set) error {
	doc := document{Segments: make([]documentSegment, len(set))}
	for i, seg := range set {
		doc.Segments[i] = documentSegment{
			Speaker: seg.Speaker,
			Start:   timestamp.Format(seg.Start),
			End:     timestamp.Format(seg.End),
			Text:    seg.Text,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding diarization document: %w", err)
	}

	return nil
}

// WriteFile is Write over a file path.
func WriteFile(path string, set Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create diarization file: %w", err)
	}

	if err := Write(f, set); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
