package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatru/prodmatch/internal/catalog"
)

func namedCand(id int64, name string, score int) Candidate {
	return Candidate{Entry: catalog.Entry{ID: id, Name: name}, Score: score}
}

func TestBooster_WordAndPhraseBoost(t *testing.T) {
	b := NewBooster(DefaultOptions())
	cands := []Candidate{
		namedCand(1, "Matrix SoColor 6RC", 100),
		namedCand(2, "Loreal 6RC", 45),
	}

	b.Apply(cands, "socolor 6rc")

	// Both words present + verbatim phrase: +5+5+15 = +25.
	assert.Equal(t, 125, cands[0].Score)
	// One word of two present, one missing: +5-3 = +2.
	assert.Equal(t, 47, cands[1].Score)
}

func TestBooster_NumberBoostAndPenalty(t *testing.T) {
	b := NewBooster(DefaultOptions())
	cands := []Candidate{
		namedCand(1, "Краска тон 7 красный", 60),
		namedCand(2, "Краска красный", 60),
	}

	b.Apply(cands, "краска 7")

	// word hit +5, number hit +20, phrase absent.
	assert.Equal(t, 85, cands[0].Score)
	// word hit +5, number missing -10; single word so no word penalty.
	assert.Equal(t, 55, cands[1].Score)
}

func TestBooster_StopwordsNeverCountAgainst(t *testing.T) {
	b := NewBooster(DefaultOptions())
	cands := []Candidate{namedCand(1, "Шампунь волос", 50)}

	b.Apply(cands, "шампунь для волос")

	// "для" is a stopword: two real words, both hit (+10), phrase is
	// absent from the name, no penalty.
	assert.Equal(t, 60, cands[0].Score)
}

func TestBooster_ScoresMayGoNegative(t *testing.T) {
	b := NewBooster(DefaultOptions())
	cands := []Candidate{namedCand(1, "absolutely unrelated", 5)}

	b.Apply(cands, "matrix socolor 6 7 8")

	require.Negative(t, cands[0].Score)
}

func TestBooster_WordPenaltyNeedsTwoWords(t *testing.T) {
	b := NewBooster(DefaultOptions())
	cands := []Candidate{namedCand(1, "Loreal", 50)}

	// A single missing word is forgiven for one-word queries.
	b.Apply(cands, "matrix")
	assert.Equal(t, 50, cands[0].Score)
}

func TestBooster_EmptyQueryIsNoop(t *testing.T) {
	b := NewBooster(DefaultOptions())
	cands := []Candidate{namedCand(1, "Loreal", 50)}
	b.Apply(cands, "")
	assert.Equal(t, 50, cands[0].Score)
}
