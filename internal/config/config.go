// Package config loads the layered prodmatch configuration: hardcoded
// defaults, then the user config, then the project config, then
// environment variables, each layer overriding the previous one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okatru/prodmatch/internal/errors"
	"github.com/okatru/prodmatch/internal/search"
)

// Config is the complete prodmatch configuration.
type Config struct {
	Catalog  CatalogConfig  `yaml:"catalog" json:"catalog"`
	Synonyms SynonymsConfig `yaml:"synonyms" json:"synonyms"`
	Search   SearchConfig   `yaml:"search" json:"search"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
}

// CatalogConfig says where the product catalog lives and how often to
// reload it. The file extension selects the loader: .db/.sqlite/.sqlite3
// opens a SQLite database, .csv reads a CSV export.
type CatalogConfig struct {
	Path           string `yaml:"path" json:"path"`
	ReloadInterval string `yaml:"reload_interval" json:"reload_interval"`
}

// SynonymsConfig configures the optional synonym file. A missing file
// means no synonyms, not an error.
type SynonymsConfig struct {
	Path string `yaml:"path" json:"path"`
	// Watch enables filesystem watching so edits apply without polling.
	Watch bool `yaml:"watch" json:"watch"`
	// Debounce coalesces bursts of filesystem events into one reload.
	Debounce string `yaml:"debounce" json:"debounce"`
}

// SearchConfig exposes the tuned pipeline constants. Zero values fall
// back to the production defaults; treat overrides as experiments, the
// defaults carry years of tuning.
type SearchConfig struct {
	FuzzyCutoff      int `yaml:"fuzzy_cutoff" json:"fuzzy_cutoff"`
	FuzzyCutoffLong  int `yaml:"fuzzy_cutoff_long" json:"fuzzy_cutoff_long"`
	MaxResults       int `yaml:"max_results" json:"max_results"`
	IDLimit          int `yaml:"id_limit" json:"id_limit"`
	CacheSize        int `yaml:"cache_size" json:"cache_size"`
	BatchConcurrency int `yaml:"batch_concurrency" json:"batch_concurrency"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file" json:"file"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:           "",
			ReloadInterval: "5m",
		},
		Synonyms: SynonymsConfig{
			Path:     "",
			Watch:    true,
			Debounce: "200ms",
		},
		Search: SearchConfig{
			FuzzyCutoff:      40,
			FuzzyCutoffLong:  55,
			MaxResults:       300,
			IDLimit:          96,
			CacheSize:        512,
			BatchConcurrency: 8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "",
		},
	}
}

// Options converts the search section into engine options. Zero fields
// keep the engine defaults.
func (c *Config) Options() search.Options {
	return search.Options{
		FuzzyCutoff:      c.Search.FuzzyCutoff,
		FuzzyCutoffLong:  c.Search.FuzzyCutoffLong,
		MaxResults:       c.Search.MaxResults,
		IDLimit:          c.Search.IDLimit,
		CacheSize:        c.Search.CacheSize,
		BatchConcurrency: c.Search.BatchConcurrency,
	}
}

// GetUserConfigPath returns the user configuration path, following the
// XDG Base Directory layout.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prodmatch", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "prodmatch", "config.yaml")
	}
	return filepath.Join(home, ".config", "prodmatch", "config.yaml")
}

// Load builds the configuration for a project directory. Precedence,
// lowest first:
//  1. hardcoded defaults
//  2. user config (~/.config/prodmatch/config.yaml)
//  3. project config (.prodmatch.yaml or .prodmatch.yml in dir)
//  4. PRODMATCH_* environment variables
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if path := GetUserConfigPath(); fileExists(path) {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadFromDir(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads one explicit config file over the defaults, skipping
// the user/project layering. Used by the --config flag.
func LoadFile(path string) (*Config, error) {
	if !fileExists(path) {
		return nil, errors.Newf(errors.ErrCodeConfigNotFound, nil,
			"config file %s not found", path)
	}
	cfg := NewConfig()
	if err := cfg.loadYAML(path); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromDir tries .prodmatch.yaml then .prodmatch.yml. No file is
// fine, the defaults stand.
func (c *Config) loadFromDir(dir string) error {
	for _, name := range []string{".prodmatch.yaml", ".prodmatch.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return c.loadYAML(path)
		}
	}
	return nil
}

// loadYAML merges one file into the config, keeping defaults for keys
// the file leaves out.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Newf(errors.ErrCodeConfigNotFound, err,
			"read config file %s", path)
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.Newf(errors.ErrCodeConfigInvalid, err,
			"parse config file %s", path)
	}
	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c. Booleans that
// default to true cannot be distinguished from "not set" here, so Watch
// only merges when the synonyms section was present at all.
func (c *Config) mergeWith(other *Config) {
	if other.Catalog.Path != "" {
		c.Catalog.Path = other.Catalog.Path
	}
	if other.Catalog.ReloadInterval != "" {
		c.Catalog.ReloadInterval = other.Catalog.ReloadInterval
	}

	if other.Synonyms.Path != "" {
		c.Synonyms.Path = other.Synonyms.Path
		c.Synonyms.Watch = other.Synonyms.Watch
	}
	if other.Synonyms.Debounce != "" {
		c.Synonyms.Debounce = other.Synonyms.Debounce
	}

	if other.Search.FuzzyCutoff != 0 {
		c.Search.FuzzyCutoff = other.Search.FuzzyCutoff
	}
	if other.Search.FuzzyCutoffLong != 0 {
		c.Search.FuzzyCutoffLong = other.Search.FuzzyCutoffLong
	}
	if other.Search.MaxResults != 0 {
		c.Search.MaxResults = other.Search.MaxResults
	}
	if other.Search.IDLimit != 0 {
		c.Search.IDLimit = other.Search.IDLimit
	}
	if other.Search.CacheSize != 0 {
		c.Search.CacheSize = other.Search.CacheSize
	}
	if other.Search.BatchConcurrency != 0 {
		c.Search.BatchConcurrency = other.Search.BatchConcurrency
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.Format != "" {
		c.Logging.Format = other.Logging.Format
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}
}

// applyEnvOverrides applies PRODMATCH_* environment variables, the
// highest-precedence layer.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PRODMATCH_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("PRODMATCH_SYNONYMS"); v != "" {
		c.Synonyms.Path = v
	}
	if v := os.Getenv("PRODMATCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PRODMATCH_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PRODMATCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Search.MaxResults = n
		}
	}
	if v := os.Getenv("PRODMATCH_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Search.CacheSize = n
		}
	}
}

// catalogExtensions are the loaders Load can build from a path.
var catalogExtensions = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
	".csv":     true,
}

// Validate checks the final configuration.
func (c *Config) Validate() error {
	if c.Catalog.Path != "" {
		ext := strings.ToLower(filepath.Ext(c.Catalog.Path))
		if !catalogExtensions[ext] {
			return errors.Newf(errors.ErrCodeConfigInvalid, nil,
				"catalog.path must end in .db, .sqlite, .sqlite3 or .csv, got %s", c.Catalog.Path)
		}
	}
	if c.Catalog.ReloadInterval != "" {
		if _, err := time.ParseDuration(c.Catalog.ReloadInterval); err != nil {
			return errors.Newf(errors.ErrCodeConfigInvalid, err,
				"catalog.reload_interval %q is not a duration", c.Catalog.ReloadInterval)
		}
	}
	if c.Synonyms.Debounce != "" {
		if _, err := time.ParseDuration(c.Synonyms.Debounce); err != nil {
			return errors.Newf(errors.ErrCodeConfigInvalid, err,
				"synonyms.debounce %q is not a duration", c.Synonyms.Debounce)
		}
	}

	for name, v := range map[string]int{
		"search.fuzzy_cutoff":      c.Search.FuzzyCutoff,
		"search.fuzzy_cutoff_long": c.Search.FuzzyCutoffLong,
	} {
		if v < 0 || v > 100 {
			return errors.Newf(errors.ErrCodeConfigInvalid, nil,
				"%s must be between 0 and 100, got %d", name, v)
		}
	}
	for name, v := range map[string]int{
		"search.max_results":       c.Search.MaxResults,
		"search.id_limit":          c.Search.IDLimit,
		"search.cache_size":        c.Search.CacheSize,
		"search.batch_concurrency": c.Search.BatchConcurrency,
	} {
		if v < 0 {
			return errors.Newf(errors.ErrCodeConfigInvalid, nil,
				"%s must be non-negative, got %d", name, v)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return errors.Newf(errors.ErrCodeConfigInvalid, nil,
			"logging.level must be debug, info, warn or error, got %s", c.Logging.Level)
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return errors.Newf(errors.ErrCodeConfigInvalid, nil,
			"logging.format must be json or text, got %s", c.Logging.Format)
	}
	return nil
}

// ReloadInterval returns the parsed catalog reload interval. Validate
// ran first, so a malformed value cannot reach here.
func (c *Config) ReloadInterval() time.Duration {
	d, err := time.ParseDuration(c.Catalog.ReloadInterval)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// Debounce returns the parsed synonym watch debounce.
func (c *Config) Debounce() time.Duration {
	d, err := time.ParseDuration(c.Synonyms.Debounce)
	if err != nil {
		return 200 * time.Millisecond
	}
	return d
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
