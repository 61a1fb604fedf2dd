package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/ui/theme"
)

const (
	unboundLabel = "unbound"
	// dialogChrome is the rows taken by the border, padding, title and help.
	dialogChrome = 8
)

// KeybindingsKeyMap defines the keys of the bindings overlay.
type KeybindingsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeybindingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeybindingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeybindingsKeyMap returns the overlay keys.
func DefaultKeybindingsKeyMap() KeybindingsKeyMap {
	return KeybindingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "enter"),
			key.WithHelp("esc", "close"),
		),
	}
}

// Keybindings lists the live command table.
type Keybindings struct {
	Closed bool

	table      table.Model
	help       help.Model
	keys       KeybindingsKeyMap
	styles     *theme.Styles
	customized int
}

// KeybindingRows flattens cfg into table rows: group, command, chord and
// a marker for bindings that differ from the defaults.
func KeybindingRows(cfg port.KeybindingsConfig) []table.Row {
	var rows []table.Row
	for _, group := range cfg.Groups {
		for _, b := range group.Bindings {
			keys := strings.Join(b.Keys, ", ")
			if b.Unset || keys == "" {
				keys = unboundLabel
			}
			marker := ""
			if b.IsCustom || b.Unset {
				marker = "*"
			}
			rows = append(rows, table.Row{group.DisplayName, b.Description, keys, marker})
		}
	}
	return rows
}

// NewKeybindings creates the overlay sized for a width x height area.
func NewKeybindings(styles *theme.Styles, cfg port.KeybindingsConfig, width, height int) Keybindings {
	if styles == nil {
		styles = theme.NewStyles(nil)
	}
	p := styles.Palette

	columns := []table.Column{
		{Title: "Group", Width: 12},
		{Title: "Command", Width: 26},
		{Title: "Keys", Width: 18},
		{Title: "", Width: 1},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(KeybindingRows(cfg)),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		BorderBottom(true).
		Foreground(p.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(p.ActiveTabFG).
		Background(p.ActiveTabBG).
		Bold(false)
	s.Cell = s.Cell.
		Foreground(p.Text)
	t.SetStyles(s)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc

	k := Keybindings{
		table:      t,
		help:       h,
		keys:       DefaultKeybindingsKeyMap(),
		styles:     styles,
		customized: len(usecase.CustomizedBindings(cfg)),
	}
	k.SetSize(width, height)
	return k
}

// SetSize fits the table into a width x height area.
func (k *Keybindings) SetSize(width, height int) {
	rows := len(k.table.Rows()) + 3
	if avail := height - dialogChrome; avail < rows {
		rows = max(avail, 3)
	}
	k.table.SetHeight(rows)
	k.table.SetWidth(min(max(width-6, 20), 70))
}

// Rows returns the rows shown.
func (k Keybindings) Rows() []table.Row {
	return k.table.Rows()
}

// Update handles a message while the overlay is open.
func (k Keybindings) Update(msg tea.Msg) (Keybindings, tea.Cmd) {
	if k.Closed {
		return k, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, k.keys.Close) {
		k.Closed = true
		return k, nil
	}

	var cmd tea.Cmd
	k.table, cmd = k.table.Update(msg)
	return k, cmd
}

// View renders the overlay box.
func (k Keybindings) View() string {
	title := "Keybindings"
	if k.customized > 0 {
		title = fmt.Sprintf("Keybindings (%d customized)", k.customized)
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		k.styles.DialogTitle.Render(title),
		k.table.View(),
		"",
		k.help.View(k.keys),
	)
	return k.styles.Dialog.Render(content)
}
