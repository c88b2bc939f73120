package strutil

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "empty string", input: "", expected: true},
		{name: "spaces only", input: "   ", expected: true},
		{name: "tabs and newlines", input: "\t\n ", expected: true},
		{name: "plain word", input: "value", expected: false},
		{name: "word with surrounding spaces", input: "  value  ", expected: false},
		{name: "single character", input: "x", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "shorter than limit", input: "ab", max: 5, expected: "ab"},
		{name: "exactly at limit", input: "abc", max: 3, expected: "abc"},
		{name: "longer than limit", input: "abcdef", max: 3, expected: "abc"},
		{name: "zero limit", input: "abc", max: 0, expected: ""},
		{name: "negative limit", input: "abc", max: -1, expected: ""},
		{name: "multi-byte runes", input: "héllo", max: 2, expected: "hé"},
		{name: "empty input", input: "", max: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestRuneLen(t *testing.T) {
	if got := RuneLen("héllo"); got != 5 {
		t.Errorf("RuneLen(%q) = %d, want 5", "héllo", got)
	}

	if got := RuneLen(""); got != 0 {
		t.Errorf("RuneLen(%q) = %d, want 0", "", got)
	}
}
