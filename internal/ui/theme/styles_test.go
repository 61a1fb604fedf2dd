package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tessera/internal/domain/entity"
)

func TestPaletteFromTheme_DefaultColors(t *testing.T) {
	def := entity.DefaultTheme()
	p := PaletteFromTheme(def)

	assert.Equal(t, lipgloss.Color(def.Background.Hex()), p.Background)
	assert.Equal(t, lipgloss.Color(def.Foreground.Hex()), p.Text)
	assert.Equal(t, lipgloss.Color(def.Palette[4].Hex()), p.Accent)
	assert.Equal(t, lipgloss.Color(def.Palette[1].Hex()), p.Error)

	// Active tab inverts the base colors unless the theme overrides them.
	assert.Equal(t, lipgloss.Color(def.Foreground.Hex()), p.ActiveTabBG)
	assert.Equal(t, lipgloss.Color(def.Background.Hex()), p.ActiveTabFG)
}

func TestPaletteFromTheme_BlendsBetweenBackgroundAndForeground(t *testing.T) {
	th := entity.DefaultTheme()
	th.Background = entity.Color{}
	th.Foreground = entity.Color{R: 255, G: 255, B: 255}
	p := PaletteFromTheme(th)

	for name, c := range map[string]lipgloss.Color{"muted": p.Muted, "border": p.Border, "surface": p.Surface} {
		assert.NotEqual(t, lipgloss.Color("#000000"), c, name)
		assert.NotEqual(t, lipgloss.Color("#ffffff"), c, name)
	}
}

func TestPaletteFromTheme_TabOverrides(t *testing.T) {
	th := entity.DefaultTheme()
	red := entity.Color{R: 255}
	th.TabActiveBG = &red

	p := PaletteFromTheme(th)
	assert.Equal(t, lipgloss.Color("#ff0000"), p.ActiveTabBG)
}

func TestPaletteFromTheme_InvalidFallsBack(t *testing.T) {
	broken := &entity.Theme{Palette: make([]entity.Color, 3)}
	assert.Equal(t, PaletteFromTheme(entity.DefaultTheme()), PaletteFromTheme(broken))
	assert.Equal(t, PaletteFromTheme(entity.DefaultTheme()), PaletteFromTheme(nil))
}

func TestNewStyles(t *testing.T) {
	s := NewStyles(nil)
	assert.Equal(t, s.Palette.Accent, s.FocusedPane.GetBorderTopForeground())
	assert.Equal(t, s.Palette.Border, s.UnfocusedPane.GetBorderTopForeground())
	assert.True(t, s.ActiveTab.GetBold())
}
