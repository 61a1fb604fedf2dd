// Package theme derives lipgloss styles from a terminal color theme.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/tessera/internal/domain/entity"
)

// Palette holds the semantic colors the UI chrome is drawn with.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color

	ActiveTabBG   lipgloss.Color
	ActiveTabFG   lipgloss.Color
	InactiveTabBG lipgloss.Color
	InactiveTabFG lipgloss.Color
}

// ANSI palette slots used for chrome.
const (
	slotRed  = 1
	slotBlue = 4
)

// PaletteFromTheme maps a validated theme onto chrome colors. Muted and
// border colors are blends of the foreground into the background.
func PaletteFromTheme(t *entity.Theme) Palette {
	if t == nil || t.Validate() != nil {
		t = entity.DefaultTheme()
	}
	bg, fg := toColorful(t.Background), toColorful(t.Foreground)

	activeBG, activeFG := t.ActiveTabColors()
	inactiveBG, inactiveFG := t.InactiveTabColors()

	return Palette{
		Background:    hex(t.Background),
		Surface:       lipgloss.Color(bg.BlendLab(fg, 0.08).Clamped().Hex()),
		Text:          hex(t.Foreground),
		Muted:         lipgloss.Color(bg.BlendLab(fg, 0.55).Clamped().Hex()),
		Accent:        hex(t.Palette[slotBlue]),
		Border:        lipgloss.Color(bg.BlendLab(fg, 0.3).Clamped().Hex()),
		Error:         hex(t.Palette[slotRed]),
		ActiveTabBG:   hex(activeBG),
		ActiveTabFG:   hex(activeFG),
		InactiveTabBG: hex(inactiveBG),
		InactiveTabFG: lipgloss.Color(toColorful(inactiveBG).BlendLab(toColorful(inactiveFG), 0.7).Clamped().Hex()),
	}
}

// Styles are the pre-built lipgloss styles of the multiplexer chrome.
type Styles struct {
	Palette Palette

	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	FocusedPane   lipgloss.Style
	UnfocusedPane lipgloss.Style
	PaneText      lipgloss.Style
	PaneFailed    lipgloss.Style
	PaneClose     lipgloss.Style

	StatusBar   lipgloss.Style
	StatusError lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles builds styles for t, falling back to the built-in theme when
// t is nil or invalid.
func NewStyles(t *entity.Theme) *Styles {
	s := &Styles{Palette: PaletteFromTheme(t)}
	s.build()
	return s
}

func (s *Styles) build() {
	p := s.Palette

	s.TabBar = lipgloss.NewStyle().
		Background(p.Surface)

	s.ActiveTab = lipgloss.NewStyle().
		Foreground(p.ActiveTabFG).
		Background(p.ActiveTabBG).
		Padding(0, 1).
		Bold(true)

	s.InactiveTab = lipgloss.NewStyle().
		Foreground(p.InactiveTabFG).
		Background(p.InactiveTabBG).
		Padding(0, 1)

	s.FocusedPane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent)

	s.UnfocusedPane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border)

	s.PaneText = lipgloss.NewStyle().
		Foreground(p.Text)

	s.PaneFailed = lipgloss.NewStyle().
		Foreground(p.Error).
		Italic(true)

	s.PaneClose = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface)

	s.StatusError = lipgloss.NewStyle().
		Foreground(p.Error).
		Background(p.Surface).
		Bold(true)

	s.Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)

	s.DialogTitle = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true).
		MarginBottom(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)
}

func toColorful(c entity.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func hex(c entity.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
