// SPDX-License-Identifier: EPL-2.0

package timestamp

import (
	"fmt"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// ParseError reports a timestamp string that does not match the
// "HH:MM:SS,mmm" form.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %s", e.Input, e.Reason)
}

// Parse converts a "HH:MM:SS,mmm" string to milliseconds.
//
// The format is strict: colon separators, a comma before the
// millisecond field, at least two hour digits, exactly two minute and
// second digits, exactly three millisecond digits, minutes and seconds
// at most 59. Anything else returns a *ParseError.
func Parse(text string) (int64, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return 0, &ParseError{Input: text, Reason: "expected three colon-separated fields"}
	}

	secParts := strings.Split(parts[2], ",")
	if len(secParts) != 2 {
		return 0, &ParseError{Input: text, Reason: "expected comma before milliseconds"}
	}

	hours, err := parseField(text, parts[0], "hours", 2, true)
	if err != nil {
		return 0, err
	}

	minutes, err := parseField(text, parts[1], "minutes", 2, false)
	if err != nil {
		return 0, err
	}
	if minutes > 59 {
		return 0, &ParseError{Input: text, Reason: "minutes out of range"}
	}

	seconds, err := parseField(text, secParts[0], "seconds", 2, false)
	if err != nil {
		return 0, err
	}
	if seconds > 59 {
		return 0, &ParseError{Input: text, Reason: "seconds out of range"}
	}

	millis, err := parseField(text, secParts[1], "milliseconds", 3, false)
	if err != nil {
		return 0, err
	}

	return hours*msPerHour + minutes*msPerMinute + seconds*msPerSecond + millis, nil
}

// Format converts milliseconds to the canonical "HH:MM:SS,mmm" form.
// Negative values are clamped to zero.
func Format(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hours := ms / msPerHour
	ms -= hours * msPerHour
	minutes := ms / msPerMinute
	ms -= minutes * msPerMinute
	seconds := ms / msPerSecond
	ms -= seconds * msPerSecond

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}

// parseField decodes one all-digit field. width is the exact digit
// count, except for hours which may grow beyond it.
func parseField(input, field, name string, width int, unbounded bool) (int64, error) {
	if unbounded {
		if len(field) < width {
			return 0, &ParseError{Input: input, Reason: name + " field too short"}
		}
	} else if len(field) != width {
		return 0, &ParseError{Input: input, Reason: fmt.Sprintf("%s field must be %d digits", name, width)}
	}

	var v int64
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, &ParseError{Input: input, Reason: name + " field is not numeric"}
		}
		v = v*10 + int64(c-'0')
	}

	return v, nil
}
