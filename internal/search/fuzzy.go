package search

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// similarityPct returns Levenshtein similarity of two strings as an
// integer percentage. Anything the library rejects scores zero rather
// than failing the query.
func similarityPct(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return int(sim * 100)
}

// tokenSortRatio compares the two strings with their tokens sorted, so
// word order does not matter but every word still must be accounted for.
// Used for queries of three or more tokens.
func tokenSortRatio(a, b string) int {
	return similarityPct(sortTokens(a), sortTokens(b))
}

// tokenSetRatio is tolerant of both word order and extra words: the
// shared token set is compared against each side's full set and the best
// of the three pairings wins. Used for queries of one or two tokens,
// where catalog names carry many words the query omits.
func tokenSetRatio(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)

	var inter, diffA, diffB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	full1 := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	full2 := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := similarityPct(base, full1)
	if s := similarityPct(base, full2); s > best {
		best = s
	}
	if s := similarityPct(full1, full2); s > best {
		best = s
	}
	return best
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}
