// Package search implements the query-to-ranked-results pipeline: text
// normalization, multi-representation query expansion (keyboard layout,
// transliteration, synonyms), fuzzy and exact matching over the catalog
// snapshot, token-level boost scoring, and result aggregation.
package search

import (
	"github.com/okatru/prodmatch/internal/catalog"
)

// Candidate pairs a catalog entry with its relevance score. Scores are
// signed integers throughout the pipeline; penalties may push them
// negative, which ranks low but is never filtered.
type Candidate struct {
	Entry catalog.Entry `json:"entry"`
	Score int           `json:"score"`
}

// BatchMatch is the top-ranked hit for one batch query. A nil
// *BatchMatch is the placeholder for a blank or unmatched item.
type BatchMatch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BoostOutcome reports what the optional secondary boost term did, so
// callers can tell "no term supplied" apart from "term matched nothing".
type BoostOutcome int

const (
	// BoostNone means no secondary term was supplied.
	BoostNone BoostOutcome = iota
	// BoostNoMatches means the term matched no candidate names.
	BoostNoMatches
	// BoostApplied means at least one candidate was re-scored.
	BoostApplied
)

// String returns a human-readable representation of the outcome.
func (o BoostOutcome) String() string {
	switch o {
	case BoostNoMatches:
		return "no-matches"
	case BoostApplied:
		return "applied"
	default:
		return "none"
	}
}
