// Package bootstrap wires configuration, logging and sessions together and
// runs the terminal UI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/session"
	"github.com/bnema/tessera/internal/infrastructure/theme"
	"github.com/bnema/tessera/internal/logging"
	"github.com/bnema/tessera/internal/ui"
	"github.com/bnema/tessera/internal/ui/input"
)

const shutdownTimeout = 5 * time.Second

// TODO: resize each pty to its pane's inner size when the layout changes.
const ptyCols, ptyRows = 80, 24

// LogFileName is the current log file; rotated backups carry a timestamp
// suffix.
const LogFileName = "tessera.log"

// Options are the command-line overrides of a run.
type Options struct {
	ConfigFile string
	ThemeFile  string
	Version    string
}

// NewConfigManager creates a config manager seeded with the built-in
// keybindings.
func NewConfigManager(ctx context.Context, opts Options) (*config.Manager, error) {
	return config.NewManager(ctx, config.Options{
		ConfigFile:         opts.ConfigFile,
		ThemeFile:          opts.ThemeFile,
		KeybindingDefaults: input.DefaultBindings(),
	})
}

// Run starts the multiplexer and blocks until the user quits. Every
// session still alive afterwards is terminated.
func Run(ctx context.Context, opts Options) error {
	timer := NewStartupTimer()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	mgr, err := NewConfigManager(ctx, opts)
	if err != nil {
		return err
	}
	loadErr := mgr.Load()
	timer.Mark("config")

	logger, closeLog := newFileLogger(mgr.Snapshot().Logging)
	defer closeLog()
	ctx = logging.WithContext(ctx, logger.With().
		Str(logging.RunIDField, logging.GenerateRunID()).
		Str("version", opts.Version).
		Logger())
	log := logging.FromContext(ctx)
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}
	timer.Mark("logger")

	app, err := ui.New(&ui.Dependencies{
		Ctx:       ctx,
		Settings:  mgr,
		Themes:    theme.NewFileLoader(),
		Spawner:   session.NewSpawner().WithPTY(ptyCols, ptyRows),
		ConfigErr: loadErr,
	})
	if err != nil {
		return fmt.Errorf("build ui: %w", err)
	}
	timer.Mark("ui")

	mgr.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("file", e.Name).Msg("config changed on disk")
		app.NotifyConfigChanged()
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}
	defer func() { _ = mgr.Close() }()
	timer.Log(ctx)

	runErr := app.Run()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	shutdownErr := session.Shutdown(shutdownCtx, app.Sessions())
	if shutdownErr != nil {
		log.Warn().Err(shutdownErr).Msg("sessions did not stop cleanly")
	}
	log.Info().Msg("tessera stopped")

	return errors.Join(runErr, shutdownErr)
}

// newFileLogger builds the run logger. The terminal belongs to the UI, so
// logs go to a rotated file or nowhere.
func newFileLogger(cfg config.LoggingConfig) (zerolog.Logger, func()) {
	logCfg := logging.ApplyEnv(logging.Config{
		Level:      logging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: time.RFC3339,
		Output:     io.Discard,
	})
	if !cfg.EnableFileLog {
		return logging.New(logCfg), func() {}
	}

	dir, err := LogDir(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tessera: no log directory: %v\n", err)
		return logging.New(logCfg), func() {}
	}
	rotator, err := logging.NewLogRotator(dir, LogFileName, cfg.MaxSizeMB, cfg.MaxBackups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tessera: file logging disabled: %v\n", err)
		return logging.New(logCfg), func() {}
	}

	logCfg.Output = rotator
	return logging.New(logCfg), func() { _ = rotator.Close() }
}

// LogDir is the configured log directory, or the XDG state default.
func LogDir(cfg config.LoggingConfig) (string, error) {
	if cfg.LogDir != "" {
		return cfg.LogDir, nil
	}
	return config.GetLogDir()
}
