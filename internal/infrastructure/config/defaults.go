package config

import "github.com/bnema/tessera/internal/application/port"

// Default configuration constants
const (
	defaultScrollbackLines  = 10000
	defaultFont             = "Fira Code"
	defaultFontSize         = 12
	defaultTabTitleTemplate = "Terminal"
	defaultSplitRatio       = 0.5
	defaultTabBarPosition   = string(port.TabBarTop)
	defaultShell            = "/bin/bash"

	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the built-in configuration. keybindings seeds the
// [keybindings] table and may be nil.
func DefaultConfig(keybindings map[string]string) *Config {
	bindings := make(map[string]string, len(keybindings))
	for cmd, chord := range keybindings {
		bindings[cmd] = chord
	}
	return &Config{
		ScrollbackLines:  defaultScrollbackLines,
		Font:             defaultFont,
		FontSize:         defaultFontSize,
		TabTitleTemplate: defaultTabTitleTemplate,
		Layout: LayoutConfig{
			SplitRatio:     defaultSplitRatio,
			TabBarPosition: defaultTabBarPosition,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Keybindings: bindings,
	}
}
