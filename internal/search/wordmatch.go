package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordRune mirrors the \w class used across the pipeline.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// containsWord reports whether word occurs in text delimited by
// non-word runes on both sides. Comparison is case-insensitive.
func containsWord(text, word string) bool {
	if word == "" || text == "" {
		return false
	}
	text = strings.ToLower(text)
	word = strings.ToLower(word)

	for from := 0; ; {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return false
		}
		i += from
		if wordBoundedAt(text, i, len(word), false) {
			return true
		}
		from = i + 1
	}
}

// containsDelimitedNumber is stricter than containsWord: the adjacent
// runes may be neither word runes nor periods, so "7" matches in
// "Shade 7 Red" but not in "10.7" or "17" or "7.5".
func containsDelimitedNumber(text, digits string) bool {
	if digits == "" || text == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(text[from:], digits)
		if i < 0 {
			return false
		}
		i += from
		if wordBoundedAt(text, i, len(digits), true) {
			return true
		}
		from = i + 1
	}
}

// wordBoundedAt checks the runes adjacent to text[i:i+n]. With
// excludePeriod the period also breaks the match (decimal shade codes).
func wordBoundedAt(text string, i, n int, excludePeriod bool) bool {
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(r) || (excludePeriod && r == '.') {
			return false
		}
	}
	if i+n < len(text) {
		r, _ := utf8.DecodeRuneInString(text[i+n:])
		if isWordRune(r) || (excludePeriod && r == '.') {
			return false
		}
	}
	return true
}
