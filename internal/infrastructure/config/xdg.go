package config

import (
	"os"
	"path/filepath"
)

const (
	appName = "tessera"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for tessera:
//   - $XDG_CONFIG_HOME/tessera (default: ~/.config/tessera)
//   - $XDG_STATE_HOME/tessera (default: ~/.local/state/tessera)
//
// With ENV=dev both point at ./.dev/tessera.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, appName),
		StateHome:  filepath.Join(stateHome, appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for tessera.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetStateDir returns the XDG state directory for tessera.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the log directory. The TUI owns the terminal, so logs
// always go to a file under XDG_STATE_HOME.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// EnsureDirectories creates the XDG directories if they don't exist.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}

// GetManDir returns the user man page directory,
// $XDG_DATA_HOME/man/man1 (default: ~/.local/share/man/man1).
func GetManDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}
