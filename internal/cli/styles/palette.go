package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/domain/entity"
)

// ThemeRenderer previews terminal themes.
type ThemeRenderer struct {
	theme *Theme
}

// NewThemeRenderer creates a new theme renderer.
func NewThemeRenderer(theme *Theme) *ThemeRenderer {
	return &ThemeRenderer{theme: theme}
}

func swatch(c entity.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
}

// Render shows the base colors and the two rows of the ANSI palette.
func (r *ThemeRenderer) Render(path string, t *entity.Theme) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "  %s %s %s\n\n",
		iconStyle.Render(IconPalette),
		r.theme.Title.Render(t.Name),
		r.theme.Subtle.Render(path),
	)
	for _, base := range []struct {
		name  string
		color entity.Color
	}{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"cursor", t.Cursor},
	} {
		fmt.Fprintf(&sb, "    %s %s %s\n", swatch(base.color),
			r.theme.Normal.Render(fmt.Sprintf("%-10s", base.name)),
			r.theme.Subtle.Render(base.color.Hex()))
	}

	sb.WriteString("\n")
	for row := 0; row < len(t.Palette); row += 8 {
		sb.WriteString("    ")
		for _, c := range t.Palette[row:min(row+8, len(t.Palette))] {
			sb.WriteString(swatch(c))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
