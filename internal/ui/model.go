package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
	"github.com/bnema/tessera/internal/ui/dialog"
	"github.com/bnema/tessera/internal/ui/dispatcher"
	"github.com/bnema/tessera/internal/ui/focus"
	"github.com/bnema/tessera/internal/ui/input"
	"github.com/bnema/tessera/internal/ui/layout"
	"github.com/bnema/tessera/internal/ui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeRename
	modeKeybindings
)

const (
	tabBarHeight  = 1
	statusHeight  = 1
	defaultWidth  = 80
	defaultHeight = 24
)

// sessionOutputMsg is sent when a session produced output.
type sessionOutputMsg struct {
	session port.TerminalSession
}

// sessionExitedMsg is sent once when a session's process ended.
type sessionExitedMsg struct {
	exit port.SessionExit
}

// postedMsg carries work queued from outside the UI loop.
type postedMsg struct {
	fn func()
}

type outputSource interface {
	Output() <-chan struct{}
}

type tailSource interface {
	Tail(n int) []string
}

// Model is the Bubble Tea model of the multiplexer. The layout is only
// ever touched from Update.
type Model struct {
	ctx        context.Context
	dispatcher *dispatcher.KeyboardDispatcher
	focus      *focus.Manager
	settings   port.SettingsSource
	styles     *theme.Styles
	renderer   *layout.TreeRenderer

	width  int
	height int

	mode     mode
	rename   dialog.Rename
	bindings dialog.Keybindings

	status    string
	statusErr bool

	watched  map[string]bool
	quitting bool
}

func newModel(
	ctx context.Context,
	d *dispatcher.KeyboardDispatcher,
	focusMgr *focus.Manager,
	settings port.SettingsSource,
) *Model {
	m := &Model{
		ctx:        ctx,
		dispatcher: d,
		focus:      focusMgr,
		settings:   settings,
		styles:     theme.NewStyles(d.Theme()),
		width:      defaultWidth,
		height:     defaultHeight,
		watched:    make(map[string]bool),
	}
	m.renderer = layout.NewTreeRenderer(m.styles, paneContent)

	d.SetOnRenameRequested(func(tab entity.TabID, currentTitle string) {
		m.rename = dialog.NewRename(m.styles, tab, currentTitle)
		m.mode = modeRename
	})
	d.SetOnShowKeybindings(func(cfg port.KeybindingsConfig) {
		m.bindings = dialog.NewKeybindings(m.styles, cfg, m.width, m.paneHeight())
		m.mode = modeKeybindings
	})
	d.SetOnQuit(func() {
		m.quitting = true
	})
	d.SetOnReloaded(m.applyReload)
	return m
}

func paneContent(pane *entity.Pane, n int) []string {
	src, ok := pane.Session.(tailSource)
	if !ok {
		return nil
	}
	return src.Tail(n)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.watchSessions()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.mode == modeKeybindings {
			m.bindings.SetSize(m.width, m.paneHeight())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.mode == modeNormal && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.handleClick(msg.X, msg.Y)
			return m, m.watchSessions()
		}
		return m, nil

	case sessionOutputMsg:
		return m, watchSession(msg.session)

	case sessionExitedMsg:
		delete(m.watched, msg.exit.SessionID)
		if m.dispatcher.HandleSessionExit(m.ctx, msg.exit) && msg.exit.Err != nil {
			m.setError(fmt.Sprintf("session ended: %v", msg.exit.Err))
		}
		return m, m.watchSessions()

	case postedMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m, m.watchSessions()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeRename:
		m.rename, cmd = m.rename.Update(msg)
		if m.rename.Done() {
			if m.rename.Confirmed && !m.dispatcher.RenameTab(m.ctx, m.rename.Tab, m.rename.Value()) {
				m.setStatus("tab not renamed")
			}
			m.mode = modeNormal
		}
		return m, cmd

	case modeKeybindings:
		m.bindings, cmd = m.bindings.Update(msg)
		if m.bindings.Closed {
			m.mode = modeNormal
		}
		return m, cmd
	}

	ev, ok := input.FromTeaKey(msg)
	if ok {
		m.setStatus("")
	}
	if !ok || !m.dispatcher.HandleKey(m.ctx, ev) {
		m.forward(msg)
		return m, nil
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, m.watchSessions()
}

// forward sends an unconsumed key to the focused session.
func (m *Model) forward(msg tea.KeyMsg) {
	log := logging.FromContext(m.ctx)

	pane := m.focusedPane()
	if pane == nil {
		return
	}
	w, ok := pane.Session.(io.Writer)
	if !ok {
		return
	}
	data := input.SessionBytes(msg)
	if len(data) == 0 {
		return
	}
	if _, err := w.Write(data); err != nil {
		log.Debug().Err(err).Str("pane_id", string(pane.ID)).Msg("input dropped")
	}
}

func (m *Model) handleClick(x, y int) {
	log := logging.FromContext(m.ctx)
	tabs := m.dispatcher.Tabs()

	barY, panesY := 0, tabBarHeight
	if m.tabBarAtBottom() {
		barY, panesY = m.paneHeight(), 0
	}

	if y == barY {
		if idx, ok := layout.TabAt(m.styles, tabs, x); ok {
			m.dispatcher.SwitchTab(m.ctx, idx)
		}
		return
	}

	tab := tabs.ActiveTab()
	if tab == nil {
		return
	}
	if id, ok := layout.CloseButtonAt(tab.Tree, m.width, m.paneHeight(), x, y-panesY); ok {
		if _, err := m.dispatcher.ClosePane(m.ctx, id); err != nil {
			m.setError(fmt.Sprintf("close pane: %v", err))
		}
		return
	}
	if _, err := m.focus.FocusAt(m.ctx, tab.Tree, m.width, m.paneHeight(), x, y-panesY); err != nil {
		log.Warn().Err(err).Msg("focus by pointer failed")
	}
}

func (m *Model) applyReload(out *usecase.ReloadAppearanceOutput) {
	m.styles = theme.NewStyles(out.Theme)
	m.renderer.SetStyles(m.styles)

	switch {
	case out.ConfigErr != nil:
		m.setError(fmt.Sprintf("config not reloaded: %v", out.ConfigErr))
	case out.ThemeErr != nil:
		m.setError(fmt.Sprintf("theme rejected: %v", out.ThemeErr))
	default:
		m.setStatus(fmt.Sprintf("config reloaded (theme %s)", out.Theme.Name))
	}
}

// watchSessions starts a watcher for every session not yet watched.
func (m *Model) watchSessions() tea.Cmd {
	var cmds []tea.Cmd
	for _, tab := range m.dispatcher.Tabs().Tabs {
		if tab.Tree == nil {
			continue
		}
		for _, pane := range tab.Tree.Panes() {
			sess, ok := pane.Session.(port.TerminalSession)
			if !ok || m.watched[sess.ID()] {
				continue
			}
			m.watched[sess.ID()] = true
			cmds = append(cmds, watchSession(sess))
		}
	}
	return tea.Batch(cmds...)
}

// watchSession waits for the next output or the exit of sess. Output
// messages re-arm the watcher from Update.
func watchSession(sess port.TerminalSession) tea.Cmd {
	return func() tea.Msg {
		var output <-chan struct{}
		if src, ok := sess.(outputSource); ok {
			output = src.Output()
		}
		select {
		case <-output:
			return sessionOutputMsg{session: sess}
		case exit, ok := <-sess.Exited():
			if !ok {
				return nil
			}
			return sessionExitedMsg{exit: exit}
		}
	}
}

// reloadConfig runs a reload triggered by a change on disk.
func (m *Model) reloadConfig() {
	if _, err := m.dispatcher.ReloadAppearance(m.ctx); err != nil {
		m.setError(fmt.Sprintf("reload failed: %v", err))
	}
}

func (m *Model) setStatus(text string) {
	m.status, m.statusErr = text, false
}

func (m *Model) setError(text string) {
	m.status, m.statusErr = text, true
}

func (m *Model) focusedPane() *entity.Pane {
	tab := m.dispatcher.Tabs().ActiveTab()
	if tab == nil || tab.Tree == nil {
		return nil
	}
	leaf := tab.Tree.FocusedLeaf()
	if leaf == nil {
		return nil
	}
	return leaf.Pane
}

func (m *Model) tabBarAtBottom() bool {
	return m.settings != nil && m.settings.Settings().TabBarPosition == port.TabBarBottom
}

func (m *Model) paneHeight() int {
	return max(m.height-tabBarHeight-statusHeight, 0)
}

// hint lists the chords of the discovery commands.
func (m *Model) hint() string {
	table := m.dispatcher.CommandTable()
	var parts []string
	for _, c := range []struct {
		cmd   input.Command
		label string
	}{
		{input.CommandShowKeybindings, "keys"},
		{input.CommandNewTab, "new tab"},
		{input.CommandQuit, "quit"},
	} {
		if chord := table.Chord(c.cmd); chord.IsSet() {
			parts = append(parts, chord.String()+" "+c.label)
		}
	}
	return strings.Join(parts, " · ")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	tabs := m.dispatcher.Tabs()
	paneH := m.paneHeight()

	var body string
	switch m.mode {
	case modeRename:
		body = lipgloss.Place(m.width, paneH, lipgloss.Center, lipgloss.Center, m.rename.View())
	case modeKeybindings:
		body = lipgloss.Place(m.width, paneH, lipgloss.Center, lipgloss.Center, m.bindings.View())
	default:
		var tree *entity.PaneTree
		if tab := tabs.ActiveTab(); tab != nil {
			tree = tab.Tree
		}
		body = m.renderer.Render(tree, m.width, paneH)
	}

	status := m.status
	if status == "" {
		status = m.hint()
	}

	bar := layout.RenderTabBar(m.styles, tabs, m.width)
	footer := layout.RenderStatus(m.styles, status, m.statusErr, m.width)
	if m.tabBarAtBottom() {
		return lipgloss.JoinVertical(lipgloss.Left, body, bar, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, body, footer)
}

var _ tea.Model = (*Model)(nil)
