// Package cmd provides the CLI commands for prodmatch.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/okatru/prodmatch/internal/logging"
	"github.com/okatru/prodmatch/pkg/version"
)

// Persistent flags shared by the subcommands.
var (
	cfgFile      string
	catalogPath  string
	synonymsPath string
	logLevel     string
	noColor      bool
	debugMode    bool

	loggingCleanup func()
)

// NewRootCmd creates the root command for the prodmatch CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prodmatch",
		Short: "Relevance-ranked product catalog search",
		Long: `Prodmatch searches a product catalog by free text or number,
tolerating misspellings, wrong keyboard layout, transliteration
and synonyms, and returns candidates ranked by relevance.

Examples:
  prodmatch search "матрикс 6rc" --catalog products.db
  prodmatch batch queries.txt --catalog products.csv --format json
  prodmatch ids "шампунь" --catalog products.db`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("prodmatch version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .prodmatch.yaml, then ~/.config/prodmatch/config.yaml)")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.db/.sqlite/.sqlite3 or .csv)")
	cmd.PersistentFlags().StringVar(&synonymsPath, "synonyms", "", "Synonyms file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.prodmatch/logs/")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = teardownLogging

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newIDsCmd())
	cmd.AddCommand(newSynonymsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging installs the default logger. With --debug, logs also go
// to the rotating file at the default path.
func setupLogging(_ *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	if logLevel != "" {
		cfg.Level = logLevel
	}
	if debugMode {
		cfg.Level = "debug"
		cfg.FilePath = logging.DefaultLogPath()
	}

	cleanup, err := logging.SetupDefault(cfg)
	if err != nil {
		return err
	}
	loggingCleanup = cleanup

	if debugMode {
		slog.Debug("debug logging enabled", "log_file", logging.DefaultLogPath())
	}
	return nil
}

func teardownLogging(_ *cobra.Command, _ []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
