// Package cli holds what tessera's subcommands share.
package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/bootstrap"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/build"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/theme"
	"github.com/bnema/tessera/internal/logging"
)

// Options are the global flags every subcommand sees.
type Options = bootstrap.Options

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// TerminalTheme is the resolved session theme; ThemeErr is set when
	// the configured one was rejected.
	TerminalTheme *entity.Theme
	ThemeErr      error
	// LoadErr is set when the config file could not be used.
	LoadErr error

	ctx context.Context
}

// NewApp loads the configuration and theme for a CLI invocation. A broken
// config is reported through LoadErr rather than failing.
func NewApp(opts Options) (*App, error) {
	logger := logging.New(logging.ApplyEnv(logging.Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: "15:04:05",
	}))
	ctx := logging.WithContext(context.Background(), logger)

	mgr, err := bootstrap.NewConfigManager(ctx, opts)
	if err != nil {
		return nil, err
	}
	loadErr := mgr.Load()

	reload := usecase.NewReloadAppearanceUseCase(mgr, theme.NewFileLoader())
	terminalTheme, themeErr := reload.ResolveTheme(ctx, mgr.Settings(), nil)

	return &App{
		Config:        mgr,
		Theme:         styles.NewTheme(terminalTheme),
		TerminalTheme: terminalTheme,
		ThemeErr:      themeErr,
		LoadErr:       loadErr,
		ctx:           ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
