package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/flow"
	"github.com/specialistvlad/flowdoc/internal/form"
	"github.com/specialistvlad/flowdoc/internal/localsession"
	"github.com/specialistvlad/flowdoc/internal/session"
	"github.com/specialistvlad/flowdoc/internal/sqlitesession"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
	form   *form.Form
	keymap flow.Keymap
}

// NewApp is the constructor for the main application. Prompts and the report
// go to outW; logs go to logW. A form that fails to load is a fatal startup
// error and panics.
func NewApp(ctx context.Context, in io.Reader, outW, logW io.Writer, cfg *Config, loader form.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	var (
		f   *form.Form
		err error
	)
	if cfg.FormPath == "" {
		f, err = loader.LoadDefault(ctx)
	} else {
		f, err = loader.Load(ctx, cfg.FormPath)
	}
	if err != nil {
		panic(fmt.Errorf("failed to load form: %w", err))
	}
	logger.Debug("Form loaded.", "title", f.Title, "sections", len(f.Sections), "questions", f.Len())

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: cfg,
		form:   f,
		keymap: flow.DefaultKeymap(),
	}
}

// Form returns the loaded form. This is primarily for testing.
func (a *App) Form() *form.Form {
	return a.form
}

// openStore creates the session store selected by the configuration.
func (a *App) openStore(ctx context.Context) (session.Store, error) {
	switch a.config.StoreKind {
	case StoreSQLite:
		return sqlitesession.Open(ctx, a.config.SessionPath)
	default:
		return localsession.New(a.config.SessionPath), nil
	}
}
