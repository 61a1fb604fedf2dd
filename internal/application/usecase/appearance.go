package usecase

import (
	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
)

// AppearanceFor builds the appearance pushed to sessions from settings
// and the current theme.
func AppearanceFor(settings port.Settings, theme *entity.Theme) port.Appearance {
	if theme == nil {
		theme = entity.DefaultTheme()
	}
	return port.Appearance{
		Font:            settings.Font,
		FontSize:        settings.FontSize,
		ScrollbackLines: settings.ScrollbackLines,
		Theme:           theme,
	}
}

// SpawnRequestFor builds the request used for every new pane.
func SpawnRequestFor(settings port.Settings, theme *entity.Theme) port.SpawnRequest {
	return port.SpawnRequest{
		Shell:      settings.Shell,
		WorkingDir: settings.WorkingDir,
		Appearance: AppearanceFor(settings, theme),
	}
}
