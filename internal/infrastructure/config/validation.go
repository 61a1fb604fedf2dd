package config

import (
	"fmt"
	"strings"

	"github.com/bnema/tessera/internal/application/port"
)

// validateConfig checks every value and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	if config.ScrollbackLines < 0 {
		validationErrors = append(validationErrors, "scrollback_lines must be non-negative")
	}
	if config.FontSize < 1 || config.FontSize > 72 {
		validationErrors = append(validationErrors, "font_size must be between 1 and 72")
	}
	if strings.TrimSpace(config.Font) == "" {
		validationErrors = append(validationErrors, "font must not be empty")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.SplitRatio <= 0 || config.Layout.SplitRatio >= 1 {
		validationErrors = append(validationErrors, "layout.split_ratio must be between 0 and 1 (exclusive)")
	}
	switch port.TabBarPosition(config.Layout.TabBarPosition) {
	case port.TabBarTop, port.TabBarBottom:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.tab_bar_position must be 'top' or 'bottom', got %q", config.Layout.TabBarPosition))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, got %q", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be 'console' or 'json', got %q", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

// validateKeybindings only checks shape; chords are resolved, and bad ones
// unset, when the command table is built.
func validateKeybindings(config *Config) []string {
	var validationErrors []string
	for cmd := range config.Keybindings {
		if strings.TrimSpace(cmd) == "" {
			validationErrors = append(validationErrors, "keybindings: command name must not be empty")
		}
	}
	return validationErrors
}
