package port

import "context"

// TabBarPosition places the tab bar above or below the panes.
type TabBarPosition string

const (
	TabBarTop    TabBarPosition = "top"
	TabBarBottom TabBarPosition = "bottom"
)

// Settings is the read-only view of the configuration the core consumes.
type Settings struct {
	ScrollbackLines  int
	Font             string
	FontSize         int
	Shell            string
	WorkingDir       string
	TabTitleTemplate string
	TabBarPosition   TabBarPosition
	// ThemeFile is absolute, or empty for the built-in theme.
	ThemeFile  string
	SplitRatio float64
	// Keybindings maps command names to chord specs.
	Keybindings map[string]string
}

// SettingsSource provides the current settings snapshot and reloads it
// from its backing store. A failed reload keeps the previous snapshot.
type SettingsSource interface {
	Settings() Settings
	Reload(ctx context.Context) error
}
