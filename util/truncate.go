package util

import "unicode/utf8"

// TruncateUTF8 truncates a string to contain a
// maximum number of runes, truncating on rune boundary.
// Returns true if the returned string differs from s.
func TruncateUTF8(s string, maxRunes int) (string, bool) {
	if maxRunes < 0 {
		maxRunes = 0
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s, false
	}
	return string([]rune(s)[:maxRunes]), true
}

// RuneLen counts the characters of a name field.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
