package search

import (
	"strings"

	"github.com/okatru/prodmatch/internal/lang"
	"github.com/okatru/prodmatch/internal/synonyms"
)

// GenerateVariants builds the deduplicated set of alternative query
// strings matched independently against the catalog:
//
//  1. the full normalized (synonym-substituted) query
//  2. its first token alone
//  3. for every token with synonym entries, the query with that token
//     replaced by each alternative, plus each alternative standing alone
//  4. the layout-converted and transliterated form of everything
//     collected so far, when different
//
// The result never contains empty or whitespace-only strings, and its
// order is deterministic for a fixed input and table.
func GenerateVariants(normalized string, table synonyms.Table) []string {
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(strings.Join(tokens, " "))
	add(tokens[0])

	for i, tok := range tokens {
		for _, alt := range table.Alternatives(tok) {
			replaced := make([]string, len(tokens))
			copy(replaced, tokens)
			replaced[i] = alt
			add(strings.Join(replaced, " "))
			add(alt)
		}
	}

	// Layout and transliteration run over the base set only; converting
	// a converted variant would walk away from the original query.
	base := out[:len(out):len(out)]
	for _, v := range base {
		if conv := lang.ConvertLayout(v); conv != v {
			add(conv)
		}
		if translit, ok := lang.Transliterate(v); ok && translit != v {
			add(translit)
		}
	}

	return out
}
