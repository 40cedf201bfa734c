package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/okatru/prodmatch/internal/catalog"
	"github.com/okatru/prodmatch/internal/config"
	"github.com/okatru/prodmatch/internal/errors"
	"github.com/okatru/prodmatch/internal/search"
	"github.com/okatru/prodmatch/internal/synonyms"
)

// app wires the configured catalog, synonyms and engine together for
// one command invocation.
type app struct {
	cfg      *config.Config
	holder   *catalog.Holder
	synonyms *synonyms.Cache
	engine   *search.Engine
	logger   *slog.Logger
}

// loadConfig loads the layered configuration and applies the CLI flag
// overrides, which beat every config layer.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if synonymsPath != "" {
		cfg.Synonyms.Path = synonymsPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp loads the configuration and builds the search engine over a
// freshly loaded catalog snapshot.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Catalog.Path == "" {
		return nil, errors.New(errors.ErrCodeConfigInvalid,
			"no catalog configured, pass --catalog or set catalog.path", nil)
	}

	logger := slog.Default()

	loader, err := newLoader(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	holder := catalog.NewHolder(loader, logger)
	if err := holder.Reload(ctx); err != nil {
		return nil, err
	}

	cache := synonyms.NewCache(&synonyms.FileSource{Path: cfg.Synonyms.Path}, logger)
	cache.Refresh()

	engine, err := search.NewEngine(holder, cache, cfg.Options(), logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		holder:   holder,
		synonyms: cache,
		engine:   engine,
		logger:   logger,
	}, nil
}

// newLoader picks the catalog loader from the file extension.
func newLoader(path string) (catalog.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return catalog.NewSQLiteLoader(path), nil
	case ".csv":
		return catalog.NewCSVLoader(path), nil
	default:
		return nil, errors.Newf(errors.ErrCodeConfigInvalid, nil,
			"unsupported catalog format %q", filepath.Ext(path))
	}
}

// watchSynonyms starts the filesystem watcher for long-running
// commands. The returned stop function cancels it.
func (a *app) watchSynonyms(ctx context.Context) func() {
	if !a.cfg.Synonyms.Watch || a.cfg.Synonyms.Path == "" {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	w := synonyms.NewWatcher(a.synonyms, a.cfg.Synonyms.Path, a.logger)
	go func() {
		if err := w.Watch(ctx); err != nil && ctx.Err() == nil {
			a.logger.Warn("synonyms watcher stopped", "error", err)
		}
	}()
	return cancel
}
