// Package config loads tessera's TOML configuration through viper and
// serves it as atomically swapped snapshots.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/logging"
)

var (
	// ErrConfigParse is returned when the config file cannot be read or decoded.
	ErrConfigParse = errors.New("config parse error")
	// ErrConfigInvalid is returned when decoded values fail validation.
	ErrConfigInvalid = errors.New("invalid config")
)

// Options tune where a Manager reads from.
type Options struct {
	// ConfigFile replaces the XDG lookup when set.
	ConfigFile string
	// ThemeFile overrides theme_file from the config, e.g. from --theme-file.
	ThemeFile string
	// KeybindingDefaults seeds [keybindings] so partial tables merge over them.
	KeybindingDefaults map[string]string
}

// Manager handles configuration loading, watching, and reloading.
// Readers get the current snapshot without locking; a reload swaps in a
// complete new Config or keeps the old one. Every viper access happens
// under mu.
type Manager struct {
	viper    *viper.Viper
	opts     Options
	log      zerolog.Logger
	snapshot atomic.Pointer[Config]
	file     atomic.Pointer[string]

	mu        sync.Mutex
	callbacks []func(fsnotify.Event)
	watcher   *fsnotify.Watcher
}

// NewManager creates a new configuration manager holding the defaults
// until Load succeeds.
func NewManager(ctx context.Context, opts Options) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix("TESSERA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TESSERA_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TESSERA_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TESSERA_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TESSERA_LOG_FORMAT: %w", err)
	}

	m := &Manager{
		viper: v,
		opts:  opts,
		log:   logging.FromContext(ctx).With().Str("component", "config").Logger(),
	}
	m.setDefaults()
	m.snapshot.Store(DefaultConfig(opts.KeybindingDefaults))
	return m, nil
}

// Load reads the config file, creating a default one if none exists.
// On failure the defaults stay in effect and the error is returned.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opts.ConfigFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	if err := m.readConfigFile(); err != nil {
		return err
	}
	cfg, err := m.decode()
	if err != nil {
		return err
	}

	m.snapshot.Store(cfg)
	m.log.Debug().Str("file", m.loadedFile()).Msg("config loaded")
	return nil
}

// Reload re-reads the config file. A file that fails to parse or validate
// leaves the previous snapshot in place.
func (m *Manager) Reload(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reloadLocked()
}

func (m *Manager) reloadLocked() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConfigParse, m.ConfigFile(), err)
	}
	m.rememberFile()
	cfg, err := m.decode()
	if err != nil {
		return err
	}

	m.snapshot.Store(cfg)
	m.log.Debug().Str("file", m.loadedFile()).Msg("config reloaded")
	return nil
}

// rememberFile publishes the file viper read so lock-free readers never
// touch viper. Callers hold mu.
func (m *Manager) rememberFile() {
	if used := m.viper.ConfigFileUsed(); used != "" {
		m.file.Store(&used)
	}
}

func (m *Manager) loadedFile() string {
	if p := m.file.Load(); p != nil {
		return *p
	}
	return ""
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.rememberFile()
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %v\nCheck the file format (must be valid TOML) and permissions", ErrConfigParse, m.ConfigFile(), err)
	}

	path := m.ConfigFile()
	if createErr := m.createDefaultConfig(path); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			path,
			createErr,
		)
	}
	m.viper.SetConfigFile(path)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("%w: failed to read newly created config file: %v", ErrConfigParse, rereadErr)
	}
	m.rememberFile()
	return nil
}

func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf(
			"%w: %s: %v\nCheck for invalid values or type mismatches",
			ErrConfigParse,
			m.ConfigFile(),
			err,
		)
	}
	m.normalize(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return cfg, nil
}

func (m *Manager) normalize(cfg *Config) {
	if title := strings.TrimSpace(cfg.TabTitle); title != "" && !m.viper.InConfig("tab_title_template") {
		cfg.TabTitleTemplate = title
	}
	if strings.TrimSpace(cfg.TabTitleTemplate) == "" {
		cfg.TabTitleTemplate = defaultTabTitleTemplate
	}
	cfg.Layout.TabBarPosition = strings.ToLower(strings.TrimSpace(cfg.Layout.TabBarPosition))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Shell = strings.TrimSpace(cfg.Shell)
	cfg.ThemeFile = strings.TrimSpace(cfg.ThemeFile)
	if cfg.Keybindings == nil {
		cfg.Keybindings = map[string]string{}
	}
}

func (m *Manager) createDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(m.opts.KeybindingDefaults), path); err != nil {
		return err
	}
	m.log.Info().Str("file", path).Msg("created default configuration file")

	if err := WriteSchemaFile(filepath.Dir(path)); err != nil {
		m.log.Warn().Err(err).Msg("failed to write config schema")
	}
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig(m.opts.KeybindingDefaults)

	m.viper.SetDefault("scrollback_lines", defaults.ScrollbackLines)
	m.viper.SetDefault("font", defaults.Font)
	m.viper.SetDefault("font_size", defaults.FontSize)
	m.viper.SetDefault("shell", defaults.Shell)
	m.viper.SetDefault("working_dir", defaults.WorkingDir)
	m.viper.SetDefault("tab_title_template", defaults.TabTitleTemplate)
	m.viper.SetDefault("theme_file", defaults.ThemeFile)

	m.viper.SetDefault("layout.split_ratio", defaults.Layout.SplitRatio)
	m.viper.SetDefault("layout.tab_bar_position", defaults.Layout.TabBarPosition)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	for cmd, chord := range defaults.Keybindings {
		m.viper.SetDefault("keybindings."+cmd, chord)
	}
}

// Snapshot returns a copy of the current configuration.
func (m *Manager) Snapshot() *Config {
	current := m.snapshot.Load()
	cfg := *current
	cfg.Keybindings = make(map[string]string, len(current.Keybindings))
	for cmd, chord := range current.Keybindings {
		cfg.Keybindings[cmd] = chord
	}
	return &cfg
}

// ConfigFile returns the path of the config file in use, or the path one
// would be created at.
func (m *Manager) ConfigFile() string {
	if used := m.loadedFile(); used != "" {
		return used
	}
	if m.opts.ConfigFile != "" {
		return m.opts.ConfigFile
	}
	path, err := GetConfigFile()
	if err != nil {
		return "config.toml"
	}
	return path
}

// ConfigDir is the directory relative theme paths resolve against.
func (m *Manager) ConfigDir() string {
	return filepath.Dir(m.ConfigFile())
}

// Settings projects the current snapshot for the application layer.
func (m *Manager) Settings() port.Settings {
	cfg := m.Snapshot()

	shell := cfg.Shell
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = defaultShell
	}

	return port.Settings{
		ScrollbackLines:  cfg.ScrollbackLines,
		Font:             cfg.Font,
		FontSize:         cfg.FontSize,
		Shell:            shell,
		WorkingDir:       expandHome(cfg.WorkingDir),
		TabTitleTemplate: cfg.TabTitleTemplate,
		TabBarPosition:   port.TabBarPosition(cfg.Layout.TabBarPosition),
		ThemeFile:        m.themePath(cfg.ThemeFile),
		SplitRatio:       cfg.Layout.SplitRatio,
		Keybindings:      cfg.Keybindings,
	}
}

// themePath resolves the theme file: the override relative to the working
// directory, the configured value relative to the config directory.
func (m *Manager) themePath(configured string) string {
	if override := strings.TrimSpace(m.opts.ThemeFile); override != "" {
		override = expandHome(override)
		if abs, err := filepath.Abs(override); err == nil {
			return abs
		}
		return override
	}
	if configured == "" {
		return ""
	}
	configured = expandHome(configured)
	if filepath.IsAbs(configured) {
		return configured
	}
	return filepath.Join(m.ConfigDir(), configured)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

var _ port.SettingsSource = (*Manager)(nil)
