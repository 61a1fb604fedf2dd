package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/application/port"
)

var testBindings = map[string]string{
	"new_tab": "alt+shift+t",
	"quit":    "alt+shift+q",
}

func newTestManager(t *testing.T, contents string, opts Options) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), filePerm))
	}
	opts.ConfigFile = path
	if opts.KeybindingDefaults == nil {
		opts.KeybindingDefaults = testBindings
	}
	m, err := NewManager(context.Background(), opts)
	require.NoError(t, err)
	return m, path
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	m, path := newTestManager(t, "", Options{})

	require.NoError(t, m.Load())

	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), schemaFileName))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#:schema"))
	assert.Contains(t, string(data), "[keybindings]")

	cfg := m.Snapshot()
	assert.Equal(t, defaultScrollbackLines, cfg.ScrollbackLines)
	assert.Equal(t, defaultFontSize, cfg.FontSize)
	assert.Equal(t, defaultTabTitleTemplate, cfg.TabTitleTemplate)
	assert.Equal(t, "alt+shift+t", cfg.Keybindings["new_tab"])
}

func TestLoad_PartialFileMergesOverDefaults(t *testing.T) {
	m, _ := newTestManager(t, `
font_size = 14

[layout]
split_ratio = 0.6

[keybindings]
quit = "ctrl+q"
`, Options{})

	require.NoError(t, m.Load())

	s := m.Settings()
	assert.Equal(t, 14, s.FontSize)
	assert.Equal(t, defaultFont, s.Font)
	assert.Equal(t, defaultScrollbackLines, s.ScrollbackLines)
	assert.InDelta(t, 0.6, s.SplitRatio, 1e-9)
	assert.Equal(t, port.TabBarTop, s.TabBarPosition)
	assert.Equal(t, "ctrl+q", s.Keybindings["quit"])
	assert.Equal(t, "alt+shift+t", s.Keybindings["new_tab"], "unlisted bindings keep defaults")
}

func TestLoad_MalformedFileKeepsDefaults(t *testing.T) {
	m, _ := newTestManager(t, "font_size = [\n", Options{})

	err := m.Load()
	require.ErrorIs(t, err, ErrConfigParse)
	assert.Equal(t, defaultFontSize, m.Settings().FontSize)
}

func TestReload_MalformedFileKeepsPreviousSnapshot(t *testing.T) {
	m, path := newTestManager(t, "font_size = 14\n", Options{})
	require.NoError(t, m.Load())

	require.NoError(t, os.WriteFile(path, []byte("font_size = [\n"), filePerm))
	err := m.Reload(context.Background())
	require.ErrorIs(t, err, ErrConfigParse)
	assert.Equal(t, 14, m.Settings().FontSize)

	require.NoError(t, os.WriteFile(path, []byte("font_size = 18\n"), filePerm))
	require.NoError(t, m.Reload(context.Background()))
	assert.Equal(t, 18, m.Settings().FontSize)
}

func TestReload_InvalidValuesKeepPreviousSnapshot(t *testing.T) {
	m, path := newTestManager(t, "scrollback_lines = 500\n", Options{})
	require.NoError(t, m.Load())

	require.NoError(t, os.WriteFile(path, []byte("scrollback_lines = -1\n[layout]\nsplit_ratio = 1.5\n"), filePerm))
	err := m.Reload(context.Background())
	require.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "scrollback_lines")
	assert.Contains(t, err.Error(), "layout.split_ratio")
	assert.Equal(t, 500, m.Settings().ScrollbackLines)
}

func TestLoad_TabTitleAlias(t *testing.T) {
	m, _ := newTestManager(t, "tab_title = \"Shell\"\n", Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, "Shell", m.Settings().TabTitleTemplate)

	m, _ = newTestManager(t, "tab_title = \"Old\"\ntab_title_template = \"New\"\n", Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, "New", m.Settings().TabTitleTemplate, "new key wins")
}

func TestSettings_ThemePathResolution(t *testing.T) {
	m, path := newTestManager(t, "theme_file = \"themes/dark.toml\"\n", Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "themes", "dark.toml"), m.Settings().ThemeFile)

	m, _ = newTestManager(t, "theme_file = \"/etc/tessera/dark.toml\"\n", Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, "/etc/tessera/dark.toml", m.Settings().ThemeFile)

	m, _ = newTestManager(t, "", Options{})
	require.NoError(t, m.Load())
	assert.Empty(t, m.Settings().ThemeFile)
}

func TestSettings_ThemeOverride(t *testing.T) {
	m, _ := newTestManager(t, "theme_file = \"themes/dark.toml\"\n", Options{ThemeFile: "light.toml"})
	require.NoError(t, m.Load())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "light.toml"), m.Settings().ThemeFile)
}

func TestSettings_ShellFallback(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	m, _ := newTestManager(t, "", Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, "/usr/bin/fish", m.Settings().Shell)

	t.Setenv("SHELL", "")
	assert.Equal(t, defaultShell, m.Settings().Shell)

	m, _ = newTestManager(t, "shell = \"/bin/zsh\"\n", Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, "/bin/zsh", m.Settings().Shell)
}

func TestSnapshot_IsACopy(t *testing.T) {
	m, _ := newTestManager(t, "", Options{})
	require.NoError(t, m.Load())

	cfg := m.Snapshot()
	cfg.FontSize = 99
	cfg.Keybindings["quit"] = "ctrl+c"

	assert.Equal(t, defaultFontSize, m.Snapshot().FontSize)
	assert.Equal(t, "alt+shift+q", m.Snapshot().Keybindings["quit"])
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig(nil)
	cfg.FontSize = 0
	cfg.Layout.TabBarPosition = "left"
	cfg.Logging.Level = "loud"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font_size")
	assert.Contains(t, err.Error(), "tab_bar_position")
	assert.Contains(t, err.Error(), "logging.level")

	assert.NoError(t, validateConfig(DefaultConfig(testBindings)))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, `"scrollback_lines"`)
	assert.Contains(t, schema, `"split_ratio"`)
	assert.Contains(t, schema, `"keybindings"`)
	assert.Contains(t, schema, "Tessera Configuration")
}

func TestWatch_SwapsSnapshotBeforeNotifying(t *testing.T) {
	m, path := newTestManager(t, "font_size = 12\n", Options{})
	require.NoError(t, m.Load())
	t.Cleanup(func() { _ = m.Close() })

	seen := make(chan int, 8)
	m.OnConfigChange(func(fsnotify.Event) { seen <- m.Settings().FontSize })
	require.NoError(t, m.Watch())
	require.NoError(t, m.Watch(), "second call is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("font_size = 20\n"), filePerm))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case size := <-seen:
			if size == 20 {
				return
			}
		case <-deadline:
			t.Fatal("no config change notification carrying the new snapshot")
		}
	}
}

// replaceFile swaps contents in with a rename, like editors that save
// atomically, so readers never see a half-written file.
func replaceFile(t *testing.T, path, contents string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(contents), filePerm))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatch_ConcurrentReloadsKeepSnapshotWhole(t *testing.T) {
	m, path := newTestManager(t, "font_size = 10\nscrollback_lines = 1010\n", Options{})
	require.NoError(t, m.Load())
	t.Cleanup(func() { _ = m.Close() })

	changed := make(chan struct{}, 1)
	m.OnConfigChange(func(fsnotify.Event) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, m.Watch())

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case <-changed:
			}
			_ = m.Reload(context.Background())
			cfg := m.Snapshot()
			if cfg.ScrollbackLines != cfg.FontSize+1000 {
				t.Errorf("torn snapshot: font_size=%d scrollback_lines=%d", cfg.FontSize, cfg.ScrollbackLines)
			}
			_ = m.ConfigFile()
		}
	}()

	for size := 11; size <= 30; size++ {
		replaceFile(t, path, fmt.Sprintf("font_size = %d\nscrollback_lines = %d\n", size, size+1000))
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return m.Settings().FontSize == 30 }, 5*time.Second, 20*time.Millisecond)
	close(stop)
	<-done
}

func TestWatch_RequiresExistingFile(t *testing.T) {
	m, err := NewManager(context.Background(), Options{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Error(t, m.Watch())
	assert.NoError(t, m.Close())
}
