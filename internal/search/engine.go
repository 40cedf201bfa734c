package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/okatru/prodmatch/internal/catalog"
	"github.com/okatru/prodmatch/internal/synonyms"
)

// Engine evaluates queries against the current catalog snapshot. It is
// safe for concurrent use: the snapshot and synonym table are acquired
// once per query and the result cache is keyed on their versions, so a
// reload mid-flight can neither tear a query nor serve stale results to
// the next one.
type Engine struct {
	catalog  *catalog.Holder
	synonyms *synonyms.Cache
	opts     Options
	matcher  *Matcher
	booster  *Booster
	cache    *lru.Cache[string, []Candidate]
	logger   *slog.Logger
}

// NewEngine creates an engine over the given catalog holder and synonym
// cache.
func NewEngine(holder *catalog.Holder, syns *synonyms.Cache, opts Options, logger *slog.Logger) (*Engine, error) {
	if holder == nil || syns == nil {
		return nil, fmt.Errorf("search: nil dependency")
	}
	if logger == nil {
		logger = slog.Default()
	}
	opts = opts.withDefaults()

	cache, err := lru.New[string, []Candidate](opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		catalog:  holder,
		synonyms: syns,
		opts:     opts,
		matcher:  NewMatcher(opts),
		booster:  NewBooster(opts),
		cache:    cache,
		logger:   logger,
	}, nil
}

// Options returns the effective (defaulted) options.
func (e *Engine) Options() Options {
	return e.opts
}

// Search evaluates one query and returns the ranked, deduplicated
// candidate sequence, capped at MaxResults. A blank query returns an
// empty result, not an error; the only error condition is context
// cancellation.
func (e *Engine) Search(ctx context.Context, rawQuery string, producerIDs []int64) ([]Candidate, error) {
	norm := Normalize(rawQuery)
	if norm == "" {
		return nil, nil
	}

	table := e.synonyms.Table()
	snap := e.catalog.Snapshot(producerIDs)

	key := e.cacheKey(norm, producerIDs, snap.Generation())
	if cached, ok := e.cache.Get(key); ok {
		return slices.Clone(cached), nil
	}

	start := time.Now()
	substituted := table.Substitute(norm)
	tokens := strings.Fields(substituted)
	if len(tokens) == 0 {
		return nil, nil
	}

	var (
		ranked []Candidate
		err    error
	)
	if isDigits(tokens[0]) {
		ranked = e.searchNumeric(tokens[0], snap)
	} else {
		ranked, err = e.searchText(ctx, substituted, tokens, table, snap)
		if err != nil {
			return nil, err
		}
	}

	ranked = Truncate(ranked, e.opts.MaxResults)
	e.cache.Add(key, slices.Clone(ranked))

	e.logger.Debug("search evaluated",
		"query", rawQuery,
		"normalized", substituted,
		"results", len(ranked),
		"duration", time.Since(start))
	return ranked, nil
}

// SearchBoosted runs Search and then re-scores candidates with an
// optional disambiguating term some callers append. The outcome reports
// whether a term was supplied and whether it matched anything, so "no
// second token" and "second token hit nothing" stay distinguishable.
func (e *Engine) SearchBoosted(ctx context.Context, rawQuery, boostTerm string, producerIDs []int64) ([]Candidate, BoostOutcome, error) {
	results, err := e.Search(ctx, rawQuery, producerIDs)
	if err != nil {
		return nil, BoostNone, err
	}

	term := Normalize(boostTerm)
	if term == "" {
		return results, BoostNone, nil
	}

	boosted := false
	for i := range results {
		if containsWord(results[i].Entry.Name, term) {
			results[i].Score += e.opts.SecondaryBoost
			boosted = true
		}
	}
	if !boosted {
		return results, BoostNoMatches, nil
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, BoostApplied, nil
}

// SearchBatch evaluates queries independently against the same snapshot
// and returns the top-ranked hit per query, nil for blank or unmatched
// items. One item's emptiness never aborts its siblings; the only error
// is context cancellation.
func (e *Engine) SearchBatch(ctx context.Context, queries []string, producerIDs []int64) ([]*BatchMatch, error) {
	results := make([]*BatchMatch, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.BatchConcurrency)
	for i, q := range queries {
		g.Go(func() error {
			cands, err := e.Search(ctx, q, producerIDs)
			if err != nil {
				return err
			}
			if len(cands) > 0 {
				results[i] = &BatchMatch{
					ID:   cands[0].Entry.ID,
					Name: cands[0].Entry.Name,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SearchIDs returns only the deduplicated entry ids, capped at IDLimit.
// Intended for high-volume programmatic callers that join against their
// own data.
func (e *Engine) SearchIDs(ctx context.Context, rawQuery string, producerIDs []int64) ([]int64, error) {
	cands, err := e.Search(ctx, rawQuery, producerIDs)
	if err != nil {
		return nil, err
	}
	limit := e.opts.IDLimit
	if len(cands) < limit {
		limit = len(cands)
	}
	ids := make([]int64, 0, limit)
	for _, c := range cands[:limit] {
		ids = append(ids, c.Entry.ID)
	}
	return ids, nil
}

// searchText runs the text branch: a strict whole-word pass on the
// first token, then a fuzzy pass per variant, then boosts from the
// normalized query and final ranking.
func (e *Engine) searchText(ctx context.Context, substituted string, tokens []string, table synonyms.Table, snap *catalog.Snapshot) ([]Candidate, error) {
	sets := [][]Candidate{e.matcher.WholeWordMatch(tokens[0], snap)}

	for _, variant := range GenerateVariants(substituted, table) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cands := e.matcher.FuzzyMatch(variant, snap); len(cands) > 0 {
			sets = append(sets, cands)
		}
	}

	merged := Merge(sets...)
	e.booster.Apply(merged, substituted)
	return Rank(merged), nil
}

// searchNumeric runs the numeric branch. The leading token round-trips
// through an integer to strip leading zeros; overflow means the token
// is not a usable number and the branch yields nothing.
func (e *Engine) searchNumeric(token string, snap *catalog.Snapshot) []Candidate {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil
	}
	digits := strconv.FormatInt(n, 10)

	if len(digits) > 2 {
		return Rank(e.matcher.NumericMatch(digits, snap))
	}

	// Short numbers read as shade numbers: name field only, plus the
	// canonical phrases for popular shade levels.
	merged := Merge(
		e.matcher.ShortNumericMatch(digits, snap),
		e.matcher.TopShadeMatch(int(n), snap),
	)
	return Rank(merged)
}

// cacheKey folds everything a result depends on: the normalized query,
// the producer filter, and the snapshot and synonym table versions.
func (e *Engine) cacheKey(norm string, producerIDs []int64, generation uint64) string {
	producers := slices.Clone(producerIDs)
	slices.Sort(producers)

	var b strings.Builder
	fmt.Fprintf(&b, "g%d|s%s|", generation, e.synonyms.Version())
	for _, id := range producers {
		fmt.Fprintf(&b, "p%d,", id)
	}
	b.WriteString(norm)
	return b.String()
}
