package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// appearanceTarget is implemented by sessions that accept live updates.
type appearanceTarget interface {
	Apply(appearance port.Appearance) error
}

// ReloadAppearanceUseCase re-reads config and theme and pushes the result
// to every live session. It never changes the layout.
type ReloadAppearanceUseCase struct {
	settings port.SettingsSource
	themes   port.ThemeLoader
}

// NewReloadAppearanceUseCase creates a new ReloadAppearanceUseCase.
func NewReloadAppearanceUseCase(settings port.SettingsSource, themes port.ThemeLoader) *ReloadAppearanceUseCase {
	return &ReloadAppearanceUseCase{settings: settings, themes: themes}
}

// ReloadAppearanceOutput reports what the reload ended up applying.
type ReloadAppearanceOutput struct {
	Settings   port.Settings
	Theme      *entity.Theme
	Appearance port.Appearance
	// ConfigErr is set when the config source failed to reload; Settings
	// then holds the previous snapshot.
	ConfigErr error
	// ThemeErr is set when the theme was rejected; Theme then holds the
	// previous theme.
	ThemeErr error
	Applied  int
	Failed   int
}

// Execute reloads settings and theme, then reapplies them to every pane
// of every tab. current is the theme in use, kept if the new one is
// rejected.
func (uc *ReloadAppearanceUseCase) Execute(ctx context.Context, tabs *entity.TabSet, current *entity.Theme) (*ReloadAppearanceOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil || uc.settings == nil {
		return nil, fmt.Errorf("settings source is nil")
	}

	out := &ReloadAppearanceOutput{}
	if err := uc.settings.Reload(ctx); err != nil {
		out.ConfigErr = err
		log.Warn().Err(err).Msg("config reload failed, keeping previous settings")
	}
	out.Settings = uc.settings.Settings()

	out.Theme, out.ThemeErr = uc.ResolveTheme(ctx, out.Settings, current)
	out.Appearance = AppearanceFor(out.Settings, out.Theme)

	if tabs != nil {
		for _, tab := range tabs.Tabs {
			if tab.Tree == nil {
				continue
			}
			for _, pane := range tab.Tree.Panes() {
				target, ok := pane.Session.(appearanceTarget)
				if !ok {
					continue
				}
				if err := target.Apply(out.Appearance); err != nil {
					out.Failed++
					log.Warn().Err(err).Str("pane_id", string(pane.ID)).Msg("appearance apply failed")
					continue
				}
				out.Applied++
			}
		}
	}

	log.Info().
		Int("applied", out.Applied).
		Int("failed", out.Failed).
		Bool("config_error", out.ConfigErr != nil).
		Bool("theme_error", out.ThemeErr != nil).
		Msg("appearance reloaded")

	return out, nil
}

// ResolveTheme loads the configured theme. With no theme file configured
// the built-in theme is used. A rejected theme yields fallback (or the
// built-in theme when fallback is nil) together with the error.
func (uc *ReloadAppearanceUseCase) ResolveTheme(ctx context.Context, settings port.Settings, fallback *entity.Theme) (*entity.Theme, error) {
	log := logging.FromContext(ctx)
	if fallback == nil {
		fallback = entity.DefaultTheme()
	}
	if settings.ThemeFile == "" {
		return entity.DefaultTheme(), nil
	}
	if uc.themes == nil {
		return fallback, fmt.Errorf("theme loader is nil")
	}

	theme, err := uc.themes.Load(ctx, settings.ThemeFile)
	if err == nil {
		err = theme.Validate()
	}
	if err != nil {
		log.Warn().
			Err(err).
			Str("theme_file", settings.ThemeFile).
			Msg("theme rejected, keeping previous colors")
		return fallback, err
	}

	log.Debug().Str("theme_file", settings.ThemeFile).Str("theme", theme.Name).Msg("theme loaded")
	return theme, nil
}
