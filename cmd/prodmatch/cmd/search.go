package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okatru/prodmatch/internal/search"
	"github.com/okatru/prodmatch/internal/ui"
)

// searchOptions holds the CLI flags for search.
type searchOptions struct {
	producers []int64
	boost     string
	limit     int
	format    string
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by text or number",
		Long: `Search the catalog and print candidates ranked by relevance.

Text queries tolerate misspellings, wrong keyboard layout,
transliteration and synonyms. A query starting with a number
searches codes, names and barcodes instead.

Examples:
  prodmatch search "матрикс 6rc"
  prodmatch search "vfnhbrc" --limit 5
  prodmatch search 4607001234567 --format json
  prodmatch search "краска" --producer 10 --producer 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().Int64SliceVarP(&opts.producers, "producer", "p", nil, "Restrict to producer ids (repeatable)")
	cmd.Flags().StringVarP(&opts.boost, "boost", "b", "", "Extra term boosting candidates that contain it")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (0 = configured cap)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	var cands []search.Candidate
	if opts.boost != "" {
		var outcome search.BoostOutcome
		cands, outcome, err = a.engine.SearchBoosted(ctx, query, opts.boost, opts.producers)
		if err != nil {
			return err
		}
		if outcome == search.BoostNoMatches {
			a.logger.Debug("boost term matched nothing", "term", opts.boost)
		}
	} else {
		cands, err = a.engine.Search(ctx, query, opts.producers)
		if err != nil {
			return err
		}
	}

	if opts.limit > 0 && len(cands) > opts.limit {
		cands = cands[:opts.limit]
	}

	if opts.format == "json" {
		if cands == nil {
			cands = []search.Candidate{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cands)
	}

	r := ui.NewRenderer(cmd.OutOrStdout(), noColor)
	r.RenderCandidates(query, cands)
	return nil
}
