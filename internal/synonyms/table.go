// Package synonyms maintains the query-expansion synonym table. The
// table lives in an external file that can be edited while the process
// runs; Cache republishes it atomically whenever the file's modification
// marker changes and keeps the last good table across transient read or
// parse failures.
package synonyms

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Table maps a lowercase word to its ordered, non-empty list of
// lowercase alternatives. The first alternative is the primary one used
// for in-place substitution; the rest only feed variant generation.
type Table map[string][]string

var fold = cases.Fold()

// Alternatives returns every alternative for the word, or nil.
func (t Table) Alternatives(word string) []string {
	return t[fold.String(strings.TrimSpace(word))]
}

// Primary returns the first alternative for the word.
func (t Table) Primary(word string) (string, bool) {
	alts := t.Alternatives(word)
	if len(alts) == 0 {
		return "", false
	}
	return alts[0], true
}

// Substitute replaces each whitespace-delimited token that has a synonym
// entry with its primary alternative, preserving the token's
// capitalization pattern, and rejoins with single spaces.
//
//	"MATRIX 6RC" with matrix→socolor yields "SOCOLOR 6RC"
//	"Matrix 6RC"                     yields "Socolor 6RC"
func (t Table) Substitute(query string) string {
	query = strings.TrimSpace(query)
	if query == "" || len(t) == 0 {
		return query
	}

	tokens := strings.Fields(query)
	for i, token := range tokens {
		if primary, ok := t.Primary(token); ok {
			tokens[i] = matchTokenCase(token, primary)
		}
	}
	return strings.Join(tokens, " ")
}

// matchTokenCase transfers the casing pattern of token onto replacement:
// all-caps stays all-caps, initial-capital stays capitalized, anything
// else keeps the replacement's stored casing.
func matchTokenCase(token, replacement string) string {
	if isUpperToken(token) {
		return strings.ToUpper(replacement)
	}
	if isCapitalizedToken(token) {
		return capitalize(replacement)
	}
	return replacement
}

// isUpperToken reports whether the token contains at least one letter
// and no lowercase letters.
func isUpperToken(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isCapitalizedToken reports an initial uppercase letter followed by
// lowercase letters only.
func isCapitalizedToken(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	rest := runes[1:]
	hasLower := false
	for _, r := range rest {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return len(rest) == 0 || hasLower
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Parse converts a decoded file mapping into a Table.
func Parse(raw map[string]any) Table {
	return parseRaw(raw)
}

// parseRaw converts the loosely-typed file mapping into a Table. Keys
// and values are case-folded and trimmed; empty keys, empty values and
// keys with no remaining alternatives are dropped. A scalar value is a
// single-alternative list.
func parseRaw(raw map[string]any) Table {
	table := make(Table, len(raw))
	for key, value := range raw {
		k := fold.String(strings.TrimSpace(key))
		if k == "" {
			continue
		}

		var alts []string
		switch v := value.(type) {
		case string:
			if s := fold.String(strings.TrimSpace(v)); s != "" {
				alts = append(alts, s)
			}
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					continue
				}
				if s = fold.String(strings.TrimSpace(s)); s != "" {
					alts = append(alts, s)
				}
			}
		}
		if len(alts) > 0 {
			table[k] = alts
		}
	}
	return table
}
