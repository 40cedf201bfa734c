package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okatru/prodmatch/internal/ui"
)

func newIDsCmd() *cobra.Command {
	var producers []int64
	var format string

	cmd := &cobra.Command{
		Use:   "ids <query>",
		Short: "Search and print only the matching entry ids",
		Long: `Search the catalog and print the deduplicated entry ids in rank
order, capped for high-volume programmatic callers.

Examples:
  prodmatch ids "шампунь 7 трав"
  prodmatch ids "matrix" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}

			ids, err := a.engine.SearchIDs(ctx, strings.Join(args, " "), producers)
			if err != nil {
				return err
			}

			if format == "json" {
				if ids == nil {
					ids = []int64{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(ids)
			}

			r := ui.NewRenderer(cmd.OutOrStdout(), noColor)
			r.RenderIDs(ids)
			return nil
		},
	}

	cmd.Flags().Int64SliceVarP(&producers, "producer", "p", nil, "Restrict to producer ids (repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}
