package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okatru/prodmatch/internal/ui"
)

// batchOptions holds the CLI flags for batch.
type batchOptions struct {
	producers []int64
	format    string
}

func newBatchCmd() *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Resolve many queries to their best match",
		Long: `Resolve queries read from a file (or stdin) one per line and
print the best match per query in input order. Blank lines and
unmatched queries produce a placeholder, never an error.

Examples:
  prodmatch batch queries.txt
  cat queries.txt | prodmatch batch --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, opts)
		},
	}

	cmd.Flags().Int64SliceVarP(&opts.producers, "producer", "p", nil, "Restrict to producer ids (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string, opts batchOptions) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	// Synonym edits mid-run apply to the queries still pending.
	stop := a.watchSynonyms(ctx)
	defer stop()

	queries, err := readQueries(cmd, args)
	if err != nil {
		return err
	}

	matches, err := a.engine.SearchBatch(ctx, queries, opts.producers)
	if err != nil {
		return err
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	r := ui.NewRenderer(cmd.OutOrStdout(), noColor)
	r.RenderBatch(queries, matches)
	return nil
}

// readQueries reads one query per line from the file argument or stdin.
// Lines keep their position: a blank line stays a blank query so output
// order mirrors input order.
func readQueries(cmd *cobra.Command, args []string) ([]string, error) {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open query file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var queries []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		queries = append(queries, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	return queries, nil
}
