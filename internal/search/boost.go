package search

import (
	"regexp"
	"strings"
)

var wordTokenRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Booster applies the token-level boost/penalty model. The adjustment
// is computed from the original normalized query, never from a variant,
// so layout-converted and transliterated matches are rewarded for
// agreeing with what the user actually typed.
type Booster struct {
	opts Options
}

// NewBooster creates a booster with the given options.
func NewBooster(opts Options) *Booster {
	return &Booster{opts: opts.withDefaults()}
}

// Apply adjusts every candidate's score in place:
//
//	+WordBoost   per query word present in the name (word-delimited)
//	+NumberBoost per query number present in the name
//	+PhraseBoost when the whole query appears verbatim in the name
//	-WordPenalty per missing word, only for queries of 2+ words
//	-NumberPenalty per missing number
//
// Scores may go negative; negative candidates rank low but survive.
func (b *Booster) Apply(cands []Candidate, normalizedQuery string) {
	if len(cands) == 0 {
		return
	}

	tokens := wordTokenRe.FindAllString(strings.ToLower(normalizedQuery), -1)
	if len(tokens) == 0 {
		return
	}

	numbers := make(map[string]struct{})
	var words []string
	for _, tok := range tokens {
		if isDigits(tok) {
			numbers[tok] = struct{}{}
		} else if !isStopword(tok) {
			words = append(words, tok)
		}
	}
	phrase := strings.Join(tokens, " ")

	for i := range cands {
		cands[i].Score += b.bonus(cands[i].Entry.Name, words, numbers, phrase)
	}
}

// bonus computes the adjustment for one name.
func (b *Booster) bonus(name string, words []string, numbers map[string]struct{}, phrase string) int {
	nameLow := strings.ToLower(name)

	wordHits := 0
	for _, w := range words {
		if containsWord(nameLow, w) {
			wordHits++
		}
	}
	numHits := 0
	for n := range numbers {
		if containsWord(nameLow, n) {
			numHits++
		}
	}

	penalty := 0
	if missing := len(words) - wordHits; missing > 0 && len(words) >= 2 {
		penalty += missing * b.opts.WordPenalty
	}
	if missing := len(numbers) - numHits; missing > 0 {
		penalty += missing * b.opts.NumberPenalty
	}

	phraseBonus := 0
	if phrase != "" && strings.Contains(nameLow, phrase) {
		phraseBonus = b.opts.PhraseBoost
	}

	return wordHits*b.opts.WordBoost + numHits*b.opts.NumberBoost + phraseBonus - penalty
}
