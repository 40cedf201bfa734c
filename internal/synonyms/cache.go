package synonyms

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/okatru/prodmatch/internal/errors"
)

// Source supplies the raw synonym mapping plus a cheap change-detection
// marker. Version must return fs.ErrNotExist (possibly wrapped) when the
// source is absent; that is a valid state meaning "no synonyms".
type Source interface {
	// Version probes the change marker without reading the mapping.
	Version() (string, error)

	// Read loads and decodes the full mapping.
	Read() (map[string]any, error)
}

// FileSource reads synonyms from a JSON or YAML file. The format is a
// flat mapping where each value is a single string or a list of strings:
//
//	matrix: [socolor, "super sync"]
//	бабки: деньги
type FileSource struct {
	Path string
}

var _ Source = (*FileSource)(nil)

// Version returns the file's modification time as an opaque marker.
func (s *FileSource) Version() (string, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

// Read decodes the file. YAML is a superset of JSON, so one decoder
// covers both extensions.
func (s *FileSource) Read() (map[string]any, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSynonymsRead, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSynonymsParse, err)
	}
	return raw, nil
}

// Cache owns the published synonym table and its source version. Reads
// are lock-free; a refresh builds a complete replacement table and
// publishes it with a single pointer store, so a failed or racing reload
// can never expose a half-built table.
type Cache struct {
	source Source
	logger *slog.Logger

	table atomic.Pointer[Table]

	mu      sync.Mutex // serializes refresh attempts
	version string
}

// NewCache creates a cache over the given source. The cache starts empty
// and fills on first access.
func NewCache(source Source, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{source: source, logger: logger}
	empty := Table{}
	c.table.Store(&empty)
	return c
}

// Table refreshes if the source changed and returns the current table.
func (c *Cache) Table() Table {
	return c.Refresh()
}

// Current returns the published table without touching the source.
func (c *Cache) Current() Table {
	return *c.table.Load()
}

// Version returns the marker of the published table.
func (c *Cache) Version() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Refresh re-checks the source marker and swaps in a rebuilt table when
// it changed. Every failure path returns the previous table:
//
//   - source absent        → reset to an empty table, clear the marker
//   - marker probe failed  → keep the previous table
//   - marker unchanged     → keep the previous table
//   - read or parse failed → keep the previous table (stale-but-valid)
func (c *Cache) Refresh() Table {
	c.mu.Lock()
	defer c.mu.Unlock()

	version, err := c.source.Version()
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if c.version != "" || len(c.Current()) != 0 {
				c.logger.Info("synonyms source removed, resetting table")
			}
			empty := Table{}
			c.table.Store(&empty)
			c.version = ""
			return empty
		}
		c.logger.Warn("synonyms version probe failed, keeping table", "error", err)
		return c.Current()
	}

	if version == c.version {
		return c.Current()
	}

	raw, err := c.source.Read()
	if err != nil {
		c.logger.Warn("synonyms reload failed, keeping previous table", "error", err)
		return c.Current()
	}

	table := parseRaw(raw)
	c.table.Store(&table)
	c.version = version
	c.logger.Info("synonyms reloaded", "entries", len(table))
	return table
}
