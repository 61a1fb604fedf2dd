package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/ui/input"
)

func TestStartupTimer(t *testing.T) {
	timer := NewStartupTimer()
	timer.Mark("config")
	time.Sleep(time.Millisecond)
	timer.Mark("ui")
	timer.Mark("config")

	assert.Equal(t, []string{"config", "ui"}, timer.Phases())
	d, ok := timer.Duration("ui")
	require.True(t, ok)
	assert.Positive(t, d)
	_, ok = timer.Duration("missing")
	assert.False(t, ok)

	assert.NotPanics(t, func() { timer.Log(context.Background()) })
}

func TestNewFileLogger_WritesToRotatedFile(t *testing.T) {
	t.Setenv("TESSERA_LOG_LEVEL", "")
	dir := t.TempDir()

	logger, closeLog := newFileLogger(config.LoggingConfig{
		Level:         "info",
		Format:        "json",
		LogDir:        dir,
		EnableFileLog: true,
		MaxSizeMB:     1,
	})
	logger.Info().Msg("hello from the test")
	closeLog()

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the test")
}

func TestNewFileLogger_Disabled(t *testing.T) {
	dir := t.TempDir()

	logger, closeLog := newFileLogger(config.LoggingConfig{Level: "debug", LogDir: dir})
	logger.Info().Msg("dropped")
	closeLog()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewConfigManager_SeedsDefaultBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[keybindings]\nquit = \"ctrl+q\"\n"), 0o644))

	mgr, err := NewConfigManager(context.Background(), Options{ConfigFile: path})
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	bindings := mgr.Settings().Keybindings
	assert.Equal(t, "ctrl+q", bindings["quit"])
	assert.Equal(t, input.DefaultChords[input.CommandNewTab], bindings["new_tab"])
}
