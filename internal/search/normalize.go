package search

import (
	"regexp"
	"strings"
)

// Punctuation runs collapse to one space. Letters, digits, underscore,
// whitespace and the literal period survive; the period carries decimal
// shade codes like 10.23 through normalization.
var (
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.]+`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize trims the raw query, replaces punctuation runs with single
// spaces and collapses repeated whitespace. Blank input normalizes to
// the empty string, which callers treat as "no query".
// Normalize is idempotent.
func Normalize(raw string) string {
	q := strings.TrimSpace(raw)
	if q == "" {
		return ""
	}
	q = punctRe.ReplaceAllString(q, " ")
	q = spaceRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
