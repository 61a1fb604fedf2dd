package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no confirmation dialog. It defaults to "No".
type ConfirmModel struct {
	Message   string
	Yes       bool
	Confirmed bool
	Canceled  bool
	theme     *Theme
	keys      confirmKeyMap
}

type confirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a new confirmation dialog.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		theme:   theme,
		keys:    defaultConfirmKeyMap(),
	}
}

// Update handles selection keys.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.Yes = false
	case key.Matches(keyMsg, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle, noStyle := t.BadgeMuted, t.Badge
	if m.Yes {
		yesStyle, noStyle = t.Badge, t.BadgeMuted
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render("No"), "  ", yesStyle.Render("Yes"))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render("y/n to select · enter to confirm · esc to cancel"),
	)
	return t.Box.Render(content)
}

// Done reports whether the user answered.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result is true only for a confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}
