// Package strutil holds small string helpers shared by the property
// binding and loading code.
package strutil

import "unicode"

// IsBlank reports whether s is empty or consists only of whitespace.
// Blank property values mean "no value" to the binder.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate returns at most max leading characters of s. The cut is made on
// rune boundaries so multi-byte characters are never split. A negative max
// is treated as zero.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// RuneLen returns the length of s in characters rather than bytes, matching
// the unit Truncate cuts in.
func RuneLen(s string) int {
	return len([]rune(s))
}
