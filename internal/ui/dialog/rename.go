// Package dialog holds the modal prompts drawn over the pane area.
package dialog

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/ui/theme"
)

const renameCharLimit = 256

// RenameKeyMap defines the keys of the rename prompt.
type RenameKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k RenameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k RenameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRenameKeyMap returns the rename prompt keys.
func DefaultRenameKeyMap() RenameKeyMap {
	return RenameKeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "rename"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Rename prompts for a new tab title.
type Rename struct {
	// Tab is the tab being renamed. Tabs may move while the prompt is open.
	Tab       entity.TabID
	Confirmed bool
	Canceled  bool

	input  textinput.Model
	help   help.Model
	keys   RenameKeyMap
	styles *theme.Styles
}

// NewRename creates a prompt pre-filled with the current title.
func NewRename(styles *theme.Styles, tab entity.TabID, current string) Rename {
	if styles == nil {
		styles = theme.NewStyles(nil)
	}
	p := styles.Palette

	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = renameCharLimit
	ti.Placeholder = "Tab title"
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(p.Text)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(p.Accent)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(p.Accent)
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc

	return Rename{
		Tab:    tab,
		input:  ti,
		help:   h,
		keys:   DefaultRenameKeyMap(),
		styles: styles,
	}
}

// Value returns the text typed so far.
func (r Rename) Value() string {
	return r.input.Value()
}

// Done reports whether the prompt was confirmed or canceled.
func (r Rename) Done() bool {
	return r.Confirmed || r.Canceled
}

// Update handles a message while the prompt is open.
func (r Rename) Update(msg tea.Msg) (Rename, tea.Cmd) {
	if r.Done() {
		return r, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, r.keys.Confirm):
			r.Confirmed = true
			r.input.Blur()
			return r, nil
		case key.Matches(msg, r.keys.Cancel):
			r.Canceled = true
			r.input.Blur()
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

// View renders the prompt box.
func (r Rename) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.DialogTitle.Render("Rename tab"),
		r.input.View(),
		"",
		r.help.View(r.keys),
	)
	return r.styles.Dialog.Render(content)
}
