package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/espgen/internal/component"
	"github.com/specialistvlad/espgen/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	catalog  *component.Catalog
	platform component.Platform
}

// NewApp is the constructor for the main application. Results are written to
// outW; logs and diagnostics go to errW. Without explicit components the
// core components are used.
func NewApp(outW, errW io.Writer, cfg *Config, comps ...component.Component) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	platform, err := component.ParsePlatform(cfg.Platform)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if len(comps) == 0 {
		comps = coreComponents()
	}
	catalog := component.NewCatalog(comps...)
	logger.Debug("All components registered.", "count", len(comps), "names", catalog.Names())

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		config:   cfg,
		catalog:  catalog,
		platform: platform,
	}, nil
}

// Catalog returns the application's components. This is primarily for testing.
func (a *App) Catalog() *component.Catalog {
	return a.catalog
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
