package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/domain/entity"
)

// Theme is the CLI's view of the terminal theme: the same palette the panes
// use, so `tessera theme` output previews what the UI will look like.
type Theme struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Badge        lipgloss.Style
	BadgeMuted   lipgloss.Style
	Box          lipgloss.Style
}

// NewTheme maps src onto CLI styles. A nil or invalid theme falls back to
// the built-in one.
func NewTheme(src *entity.Theme) *Theme {
	if src == nil || src.Validate() != nil {
		src = entity.DefaultTheme()
	}
	ansi := func(i int) lipgloss.Color { return lipgloss.Color(src.Palette[i].Hex()) }

	t := &Theme{
		Background: lipgloss.Color(src.Background.Hex()),
		Text:       lipgloss.Color(src.Foreground.Hex()),
		Muted:      ansi(8),
		Accent:     ansi(4),
		Border:     ansi(8),
		Error:      ansi(1),
		Warning:    ansi(3),
		Success:    ansi(2),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)
	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(ansi(0)).Padding(0, 1)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	return t
}
