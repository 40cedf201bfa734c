package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatru/prodmatch/internal/catalog"
)

func cand(id int64, score int) Candidate {
	return Candidate{Entry: catalog.Entry{ID: id}, Score: score}
}

func TestMerge_SkipsEmptySets(t *testing.T) {
	merged := Merge(nil, []Candidate{cand(1, 100)}, nil, []Candidate{cand(2, 50)})
	require.Len(t, merged, 2)
	assert.Equal(t, int64(1), merged[0].Entry.ID)

	assert.Nil(t, Merge(nil, nil))
}

func TestRank_DedupesByID(t *testing.T) {
	// Entry 42 appears in two branches with different scores; exactly
	// one survives and it is the first-seen one.
	merged := Merge(
		[]Candidate{cand(42, 100)},
		[]Candidate{cand(42, 73), cand(7, 60)},
	)
	ranked := Rank(merged)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(42), ranked[0].Entry.ID)
	assert.Equal(t, 100, ranked[0].Score)
	assert.Equal(t, int64(7), ranked[1].Entry.ID)
}

func TestRank_SortsDescendingStable(t *testing.T) {
	ranked := Rank([]Candidate{
		cand(1, 50), cand(2, 120), cand(3, 50), cand(4, -7),
	})

	require.Len(t, ranked, 4)
	assert.Equal(t, []int64{2, 1, 3, 4}, rankedIDs(ranked))

	// Monotonic, never increasing.
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRank_NegativeScoresSurvive(t *testing.T) {
	ranked := Rank([]Candidate{cand(1, -20), cand(2, 5)})
	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[1].Entry.ID)
}

func TestTruncate(t *testing.T) {
	ranked := []Candidate{cand(1, 3), cand(2, 2), cand(3, 1)}
	assert.Len(t, Truncate(ranked, 2), 2)
	assert.Len(t, Truncate(ranked, 10), 3)
	assert.Len(t, Truncate(ranked, 0), 3)
}

func rankedIDs(cands []Candidate) []int64 {
	ids := make([]int64, len(cands))
	for i, c := range cands {
		ids[i] = c.Entry.ID
	}
	return ids
}
