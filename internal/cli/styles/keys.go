package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tessera/internal/application/port"
)

// KeybindingsRenderer renders the command table as a bordered table.
type KeybindingsRenderer struct {
	theme *Theme
}

// NewKeybindingsRenderer creates a new keybindings renderer.
func NewKeybindingsRenderer(theme *Theme) *KeybindingsRenderer {
	return &KeybindingsRenderer{theme: theme}
}

// Render draws one row per command. Customized and unbound entries are
// marked.
func (r *KeybindingsRenderer) Render(cfg port.KeybindingsConfig) string {
	var rows [][]string
	for _, group := range cfg.Groups {
		for _, b := range group.Bindings {
			keys := strings.Join(b.Keys, ", ")
			note := ""
			switch {
			case b.Unset || keys == "":
				keys = "unbound"
				note = "default " + strings.Join(b.DefaultKeys, ", ")
			case b.IsCustom:
				note = "default " + strings.Join(b.DefaultKeys, ", ")
			}
			rows = append(rows, []string{group.DisplayName, b.Command, keys, note})
		}
	}

	header := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(r.theme.Text).Padding(0, 1)
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("Group", "Command", "Keys", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0 || col == 3:
				return muted
			default:
				return cell
			}
		})
	return t.Render()
}
