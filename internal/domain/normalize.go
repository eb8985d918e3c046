package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares a query for lookup and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - composes to Unicode NFC so "café" and "café" compare equal
//
// Inner whitespace, hyphens, and apostrophes are preserved.
func NormalizeWord(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	// A Caser is stateful and must not be shared between goroutines.
	s = cases.Lower(language.Und).String(s)
	return norm.NFC.String(s)
}

// IsEligible reports whether a normalized word is long enough to be looked up.
// A minLength below 1 is treated as 1: the empty word is never eligible.
func IsEligible(normalized string, minLength int) bool {
	if normalized == "" {
		return false
	}
	if minLength < 1 {
		minLength = 1
	}
	return utf8.RuneCountInString(normalized) >= minLength
}
