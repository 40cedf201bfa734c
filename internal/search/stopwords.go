package search

// Stopwords are prepositions, conjunctions and articles in both catalog
// languages. They never earn a word boost and never count as missing.
var stopwords = map[string]struct{}{
	// Russian
	"для": {}, "и": {}, "или": {}, "с": {}, "со": {}, "без": {},
	"на": {}, "в": {}, "по": {}, "от": {}, "до": {},
	// English
	"a": {}, "an": {}, "the": {}, "for": {}, "with": {}, "of": {},
	"and": {}, "or": {},
}

// isStopword expects a lowercased token.
func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
