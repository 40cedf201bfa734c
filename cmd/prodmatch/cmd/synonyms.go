package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okatru/prodmatch/internal/errors"
	"github.com/okatru/prodmatch/internal/synonyms"
)

func newSynonymsCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "synonyms",
		Short: "Show or validate the synonym table",
		Long: `Print the loaded synonym table, one mapping per line. With
--check, parse the file and report errors without printing the
table, for use in CI.

Examples:
  prodmatch synonyms --synonyms synonyms.yaml
  prodmatch synonyms --synonyms synonyms.yaml --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := cfg.Synonyms.Path
			if path == "" {
				return errors.New(errors.ErrCodeConfigInvalid,
					"no synonyms file configured, pass --synonyms or set synonyms.path", nil)
			}

			source := &synonyms.FileSource{Path: path}
			raw, err := source.Read()
			if err != nil {
				return err
			}
			table := synonyms.Parse(raw)

			if check {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d mappings\n", path, len(table))
				return nil
			}

			keys := make([]string, 0, len(table))
			for k := range table {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", k, strings.Join(table[k], ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Validate the file and exit")

	return cmd
}
