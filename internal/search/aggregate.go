package search

import "sort"

// Merge concatenates candidate sets in the order supplied, skipping
// empty ones. Order matters downstream: on duplicate ids the first
// occurrence survives, so callers place higher-confidence branches
// first.
func Merge(sets ...[]Candidate) []Candidate {
	total := 0
	for _, set := range sets {
		total += len(set)
	}
	if total == 0 {
		return nil
	}
	merged := make([]Candidate, 0, total)
	for _, set := range sets {
		merged = append(merged, set...)
	}
	return merged
}

// Rank deduplicates by entry id (first occurrence kept) and sorts by
// score descending. The sort is stable, so equal scores keep insertion
// order and results stay deterministic for a fixed snapshot and input.
func Rank(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(cands))
	deduped := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if _, ok := seen[c.Entry.ID]; ok {
			continue
		}
		seen[c.Entry.ID] = struct{}{}
		deduped = append(deduped, c)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Score > deduped[j].Score
	})
	return deduped
}

// Truncate caps the ranked sequence at limit. Truncation happens after
// aggregation, never before, so the cap cannot change relative order.
func Truncate(cands []Candidate, limit int) []Candidate {
	if limit <= 0 || len(cands) <= limit {
		return cands
	}
	return cands[:limit]
}
