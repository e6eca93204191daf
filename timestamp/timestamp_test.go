// SPDX-License-Identifier: EPL-2.0

package timestamp

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int64
	}{
		{"00:00:00,000", 0},
		{"00:00:00,001", 1},
		{"00:00:01,000", 1000},
		{"00:01:00,000", 60000},
		{"01:00:00,000", 3600000},
		{"01:02:03,450", 3723450},
		{"00:59:59,999", 3599999},
		{"99:00:00,000", 99 * 3600000},
		{"100:00:00,000", 100 * 3600000}, // hours are unbounded
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"1:2:3",          // wrong digit counts
		"00:00:00.000",   // dot instead of comma
		"00:00:00",       // missing milliseconds
		"00:00:00,00",    // milliseconds must be three digits
		"00:00:00,0000",  // too many millisecond digits
		"00:60:00,000",   // minutes out of range
		"00:00:60,000",   // seconds out of range
		"0:00:00,000",    // hours need two digits minimum
		"aa:00:00,000",   // non-numeric
		"00:0a:00,000",   // non-numeric
		"00:00:00,00a",   // non-numeric
		"-1:00:00,000",   // sign is not a digit
		"00-00-00,000",   // wrong separators
		"00:00:00,000,0", // trailing garbage
		"00:00:00:000",   // colon instead of comma
	}

	for _, input := range tests {
		got, err := Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) = %d, want error", input, got)
			continue
		}

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error = %T, want *ParseError", input, err)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00,000"},
		{1, "00:00:00,001"},
		{999, "00:00:00,999"},
		{1000, "00:00:01,000"},
		{3723450, "01:02:03,450"},
		{-5, "00:00:00,000"}, // negative clamps to zero
		{360000000, "100:00:00,000"},
	}

	for _, tt := range tests {
		if got := Format(tt.ms); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestRoundTrip_ParseFormat(t *testing.T) {
	t.Parallel()

	// Parse(Format(x)) == x for a spread of values
	values := []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 3723450, 359999999}
	for _, ms := range values {
		got, err := Parse(Format(ms))
		if err != nil {
			t.Fatalf("Parse(Format(%d)) error = %v", ms, err)
		}
		if got != ms {
			t.Errorf("Parse(Format(%d)) = %d, want %d", ms, got, ms)
		}
	}
}

func TestRoundTrip_FormatParse(t *testing.T) {
	t.Parallel()

	// Format(Parse(t)) returns the canonical spelling
	tests := []struct {
		input string
		want  string
	}{
		{"00:00:00,000", "00:00:00,000"},
		{"01:02:03,450", "01:02:03,450"},
		{"123:00:00,000", "123:00:00,000"},
	}

	for _, tt := range tests {
		ms, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.input, err)
		}
		if got := Format(ms); got != tt.want {
			t.Errorf("Format(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
