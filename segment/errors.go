// SPDX-License-Identifier: EPL-2.0

package segment

import "fmt"

// SchemaError reports a structurally malformed diarization document:
// missing "segments" key, wrong top-level shape, or a mandatory field
// absent from an entry. Index is -1 for document-level problems.
type SchemaError struct {
	Index int
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return "diarization schema: " + e.Msg
	}
	return fmt.Sprintf("diarization schema: segment %d: %s", e.Index, e.Msg)
}

// FormatError reports a timestamp that could not be decoded, naming the
// entry it came from.
type FormatError struct {
	Index int
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("segment %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RangeError reports a segment whose decoded start is not strictly
// before its end.
type RangeError struct {
	Index int
	Start int64
	End   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("segment %d: start %dms is not before end %dms", e.Index, e.Start, e.End)
}
