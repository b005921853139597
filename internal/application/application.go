package application

import (
	"bufio"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/search"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

// App encapsulates the dependencies of a single search run.
type App struct {
	cfg      config.Config
	storage  storage.Storage
	searcher search.Searcher
	logger   *zap.Logger
}

// Option customises an App.
type Option func(*App)

// WithStorage replaces the default filesystem storage.
func WithStorage(s storage.Storage) Option {
	return func(a *App) {
		if s != nil {
			a.storage = s
		}
	}
}

// New initializes the application from the resolved configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	app := &App{
		cfg:      cfg,
		storage:  storage.NewFileStorage(),
		searcher: search.New(cfg.IgnoreCase),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// Run reads the configured file, searches it and writes each matching line to
// w. Nothing is written when the file cannot be read.
func (a *App) Run(w io.Writer) error {
	contents, err := a.storage.ReadContents(a.cfg.FilePath)
	if err != nil {
		return &IOError{Op: "read", Path: a.cfg.FilePath, Err: err}
	}
	a.logger.Debug("file loaded",
		zap.String("path", a.cfg.FilePath),
		zap.Int("bytes", len(contents)),
	)

	results := a.searcher.Search(a.cfg.Query, contents)
	a.logger.Debug("search finished",
		zap.String("query", a.cfg.Query),
		zap.Bool("ignore_case", a.cfg.IgnoreCase),
		zap.Int("matches", len(results)),
	)

	bw := bufio.NewWriter(w)
	for _, line := range results {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return &IOError{Op: "write", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}
