package search

import (
	"strings"

	"github.com/okatru/prodmatch/internal/catalog"
)

// Matcher runs one variant against a snapshot. It owns no state beyond
// the tuned constants, so a single instance serves concurrent queries.
type Matcher struct {
	opts Options
}

// NewMatcher creates a matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	return &Matcher{opts: opts.withDefaults()}
}

// FuzzyMatch returns every entry whose name is similar enough to the
// variant. One- and two-token variants use order-tolerant set
// comparison; longer variants switch to order-sensitive comparison with
// a raised cutoff, since scrambled long queries are noise rather than
// misspellings.
func (m *Matcher) FuzzyMatch(variant string, snap *catalog.Snapshot) []Candidate {
	q := strings.ToLower(strings.TrimSpace(variant))
	if q == "" {
		return nil
	}

	tokens := strings.Fields(q)
	cutoff := m.opts.FuzzyCutoff
	orderSensitive := len(tokens) >= 3
	if orderSensitive && cutoff < m.opts.FuzzyCutoffLong {
		cutoff = m.opts.FuzzyCutoffLong
	}

	var out []Candidate
	for _, e := range snap.Entries() {
		name := strings.ToLower(e.Name)
		var score int
		if orderSensitive {
			score = tokenSortRatio(q, name)
		} else {
			score = tokenSetRatio(q, name)
		}
		if score >= cutoff {
			out = append(out, Candidate{Entry: e, Score: score})
		}
	}
	return out
}

// WholeWordMatch returns entries whose name contains the token as a
// delimited word, at the flat whole-word score. An all-digit token must
// additionally not touch a digit or period, so "6" never matches inside
// "6.3" or "163".
func (m *Matcher) WholeWordMatch(token string, snap *catalog.Snapshot) []Candidate {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	numeric := isDigits(token)
	var out []Candidate
	for _, e := range snap.Entries() {
		var hit bool
		if numeric {
			hit = containsDelimitedNumber(e.Name, token)
		} else {
			hit = containsWord(e.Name, token)
		}
		if hit {
			out = append(out, Candidate{Entry: e, Score: m.opts.WholeWordScore})
		}
	}
	return out
}

// NumericMatch handles digit strings longer than two characters, which
// look like codes or barcodes: plain substring containment over the
// code, name and barcode fields.
func (m *Matcher) NumericMatch(digits string, snap *catalog.Snapshot) []Candidate {
	var out []Candidate
	for _, e := range snap.Entries() {
		if strings.Contains(e.Code, digits) ||
			strings.Contains(e.Name, digits) ||
			strings.Contains(e.Barcode, digits) {
			out = append(out, Candidate{Entry: e, Score: m.opts.NumericScore})
		}
	}
	return out
}

// ShortNumericMatch handles one- and two-digit queries, which read as
// shade numbers: substring containment over the name field only.
func (m *Matcher) ShortNumericMatch(digits string, snap *catalog.Snapshot) []Candidate {
	var out []Candidate
	for _, e := range snap.Entries() {
		if strings.Contains(e.Name, digits) {
			out = append(out, Candidate{Entry: e, Score: m.opts.NumericScore})
		}
	}
	return out
}

// TopShadeMatch returns entries carrying a canonical phrase for one of
// the popular shade levels, or nil when the number has no entry in the
// table.
func (m *Matcher) TopShadeMatch(num int, snap *catalog.Snapshot) []Candidate {
	phrases, ok := topShadePhrases[num]
	if !ok {
		return nil
	}
	var out []Candidate
	for _, e := range snap.Entries() {
		for _, phrase := range phrases {
			if containsWord(e.Name, phrase) {
				out = append(out, Candidate{Entry: e, Score: m.opts.TopShadeScore})
				break
			}
		}
	}
	return out
}
