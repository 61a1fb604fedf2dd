// Package dispatcher routes matched key chords to layout operations.
package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
	"github.com/bnema/tessera/internal/ui/input"
)

// Deps are the collaborators of a KeyboardDispatcher.
type Deps struct {
	Tabs     *entity.TabSet
	Panes    *usecase.ManagePanesUseCase
	TabsUC   *usecase.ManageTabsUseCase
	Reload   *usecase.ReloadAppearanceUseCase
	Settings port.SettingsSource
	Commands *input.CommandTable
	Theme    *entity.Theme
}

// KeyboardDispatcher turns key events into tab and pane operations on a
// single TabSet. It keeps no layout state of its own and must only be
// used from the UI loop.
type KeyboardDispatcher struct {
	tabs     *entity.TabSet
	panes    *usecase.ManagePanesUseCase
	tabsUC   *usecase.ManageTabsUseCase
	reload   *usecase.ReloadAppearanceUseCase
	settings port.SettingsSource
	commands *input.CommandTable
	theme    *entity.Theme

	onRenameRequested func(tab entity.TabID, currentTitle string)
	onShowKeybindings func(cfg port.KeybindingsConfig)
	onQuit            func()
	onReloaded        func(out *usecase.ReloadAppearanceOutput)
}

// NewKeyboardDispatcher creates a new KeyboardDispatcher.
func NewKeyboardDispatcher(ctx context.Context, deps Deps) *KeyboardDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard dispatcher")

	commands := deps.Commands
	if commands == nil {
		commands = input.DefaultCommandTable()
	}
	theme := deps.Theme
	if theme == nil {
		theme = entity.DefaultTheme()
	}
	return &KeyboardDispatcher{
		tabs:     deps.Tabs,
		panes:    deps.Panes,
		tabsUC:   deps.TabsUC,
		reload:   deps.Reload,
		settings: deps.Settings,
		commands: commands,
		theme:    theme,
	}
}

// SetOnRenameRequested sets the callback asking the host for a new title.
func (d *KeyboardDispatcher) SetOnRenameRequested(fn func(tab entity.TabID, currentTitle string)) {
	d.onRenameRequested = fn
}

// SetOnShowKeybindings sets the callback displaying the bindings overlay.
func (d *KeyboardDispatcher) SetOnShowKeybindings(fn func(cfg port.KeybindingsConfig)) {
	d.onShowKeybindings = fn
}

// SetOnQuit sets the callback for the quit command.
func (d *KeyboardDispatcher) SetOnQuit(fn func()) {
	d.onQuit = fn
}

// SetOnReloaded sets the callback run after a reload. The output carries
// config and theme errors that were recovered from.
func (d *KeyboardDispatcher) SetOnReloaded(fn func(out *usecase.ReloadAppearanceOutput)) {
	d.onReloaded = fn
}

// SetCommandTable replaces the active bindings.
func (d *KeyboardDispatcher) SetCommandTable(table *input.CommandTable) {
	if table == nil {
		table = input.DefaultCommandTable()
	}
	d.commands = table
}

// CommandTable returns the active bindings.
func (d *KeyboardDispatcher) CommandTable() *input.CommandTable {
	return d.commands
}

// Theme returns the theme currently applied.
func (d *KeyboardDispatcher) Theme() *entity.Theme {
	return d.theme
}

// Tabs returns the tab set the dispatcher operates on.
func (d *KeyboardDispatcher) Tabs() *entity.TabSet {
	return d.tabs
}

// HandleKey matches ev against the command table and runs the command.
// It reports whether the event was consumed; unconsumed events belong to
// the focused session. A soft command that has nothing to act on leaves
// the event unconsumed, and no lower-priority command is tried.
func (d *KeyboardDispatcher) HandleKey(ctx context.Context, ev input.KeyEvent) bool {
	log := logging.FromContext(ctx)

	cmd, ok := d.commands.Match(ev)
	if !ok {
		return false
	}

	applied, err := d.Dispatch(ctx, cmd)
	if err != nil {
		log.Error().Err(err).Str("command", string(cmd)).Msg("command failed")
	}
	if cmd.IsSoft() && !applied {
		log.Trace().Str("command", string(cmd)).Msg("soft command not applicable, passing key through")
		return false
	}
	return true
}

// Dispatch runs a command. applied is false when the command had nothing
// to act on.
func (d *KeyboardDispatcher) Dispatch(ctx context.Context, cmd input.Command) (bool, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("command", string(cmd)).Msg("dispatching command")

	if d.tabs == nil {
		return false, fmt.Errorf("tab set is nil")
	}

	if idx, ok := cmd.TabIndex(); ok {
		return d.tabsUC.Switch(ctx, d.tabs, idx), nil
	}

	switch cmd {
	case input.CommandNewTab:
		_, err := d.tabsUC.Create(ctx, d.tabs, d.spawnRequest())
		return err == nil, err
	case input.CommandCloseTab:
		_, err := d.tabsUC.Close(ctx, d.tabs, d.tabs.Active, d.spawnRequest())
		return err == nil, err
	case input.CommandRenameTab:
		tab := d.tabs.ActiveTab()
		if tab == nil {
			return false, nil
		}
		if d.onRenameRequested != nil {
			d.onRenameRequested(tab.ID, tab.Title)
		}
		return true, nil
	case input.CommandNextTab:
		return d.tabsUC.SwitchNext(ctx, d.tabs), nil
	case input.CommandPreviousTab:
		return d.tabsUC.SwitchPrevious(ctx, d.tabs), nil

	case input.CommandClosePanel:
		return d.closeFocused(ctx)
	case input.CommandSplitVertical:
		return d.splitFocused(ctx, entity.OrientationHorizontal)
	case input.CommandSplitHorizontal:
		return d.splitFocused(ctx, entity.OrientationVertical)
	case input.CommandFocusLeft:
		return d.navigate(ctx, usecase.NavLeft)
	case input.CommandFocusRight:
		return d.navigate(ctx, usecase.NavRight)
	case input.CommandFocusUp:
		return d.navigate(ctx, usecase.NavUp)
	case input.CommandFocusDown:
		return d.navigate(ctx, usecase.NavDown)

	case input.CommandReloadConfig:
		return d.ReloadAppearance(ctx)
	case input.CommandShowKeybindings:
		cfg, err := d.commands.GetKeybindings(ctx)
		if err != nil {
			return false, err
		}
		if d.onShowKeybindings != nil {
			d.onShowKeybindings(cfg)
		}
		return true, nil
	case input.CommandQuit:
		if d.onQuit != nil {
			d.onQuit()
		}
		return true, nil

	default:
		log.Warn().Str("command", string(cmd)).Msg("unhandled command")
		return false, nil
	}
}

// ClosePane closes a pane by ID, as when its close button is clicked.
// A tab left without panes is closed too.
func (d *KeyboardDispatcher) ClosePane(ctx context.Context, paneID entity.PaneID) (bool, error) {
	index, leaf := d.tabs.FindPane(paneID)
	if leaf == nil {
		return false, fmt.Errorf("close %s: %w", paneID, entity.ErrStaleLeaf)
	}
	return true, d.closePaneIn(ctx, index, paneID)
}

// HandleSessionExit closes the pane whose session ended. Exits for
// sessions no longer in the layout are ignored.
func (d *KeyboardDispatcher) HandleSessionExit(ctx context.Context, exit port.SessionExit) bool {
	log := logging.FromContext(ctx)

	index, leaf := d.tabs.FindSession(exit.SessionID)
	if leaf == nil {
		log.Debug().Str("session_id", exit.SessionID).Msg("exit for unknown session ignored")
		return false
	}

	ctx = logging.WithPaneID(ctx, string(leaf.Pane.ID))
	log = logging.FromContext(ctx)
	log.Info().Int("code", exit.Code).Err(exit.Err).Msg("session exited")

	if err := d.closePaneIn(ctx, index, leaf.Pane.ID); err != nil {
		log.Error().Err(err).Msg("closing exited pane failed")
	}
	return true
}

// SwitchTab activates the tab at index, as when its label is clicked.
func (d *KeyboardDispatcher) SwitchTab(ctx context.Context, index int) bool {
	return d.tabsUC.Switch(ctx, d.tabs, index)
}

// RenameTab completes a rename started through OnRenameRequested. It
// returns false when the tab has closed since or the title is blank.
func (d *KeyboardDispatcher) RenameTab(ctx context.Context, tab entity.TabID, title string) bool {
	index := d.tabs.IndexOf(tab)
	if index < 0 {
		logging.FromContext(ctx).Debug().Str("tab_id", string(tab)).Msg("renamed tab is gone")
		return false
	}
	return d.tabsUC.Rename(ctx, d.tabs, index, title)
}

// ReloadAppearance re-reads settings and theme, rebuilds the command table
// and pushes the new appearance to every session. The layout is untouched.
func (d *KeyboardDispatcher) ReloadAppearance(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)
	if d.reload == nil {
		return false, fmt.Errorf("reload use case is nil")
	}

	out, err := d.reload.Execute(ctx, d.tabs, d.theme)
	if err != nil {
		return false, err
	}

	d.theme = out.Theme
	d.SetCommandTable(input.NewCommandTable(ctx, out.Settings.Keybindings))
	if template := strings.TrimSpace(out.Settings.TabTitleTemplate); template != "" {
		d.tabs.TitleTemplate = template
	}

	if d.onReloaded != nil {
		d.onReloaded(out)
	}
	log.Debug().Str("theme", d.theme.Name).Msg("appearance updated")
	return true, nil
}

func (d *KeyboardDispatcher) spawnRequest() port.SpawnRequest {
	if d.settings == nil {
		return usecase.SpawnRequestFor(port.Settings{}, d.theme)
	}
	return usecase.SpawnRequestFor(d.settings.Settings(), d.theme)
}

func (d *KeyboardDispatcher) splitRatio() float64 {
	if d.settings == nil {
		return usecase.DefaultSplitRatio
	}
	return d.settings.Settings().SplitRatio
}

func (d *KeyboardDispatcher) focusedLeaf() *entity.PaneNode {
	tab := d.tabs.ActiveTab()
	if tab == nil || tab.Tree == nil {
		return nil
	}
	return tab.Tree.FocusedLeaf()
}

func (d *KeyboardDispatcher) splitFocused(ctx context.Context, orientation entity.Orientation) (bool, error) {
	leaf := d.focusedLeaf()
	if leaf == nil {
		return false, nil
	}
	_, err := d.panes.Split(ctx, usecase.SplitPaneInput{
		Tree:        d.tabs.ActiveTab().Tree,
		TargetID:    leaf.Pane.ID,
		Orientation: orientation,
		Ratio:       d.splitRatio(),
		Spawn:       d.spawnRequest(),
	})
	return err == nil, err
}

func (d *KeyboardDispatcher) closeFocused(ctx context.Context) (bool, error) {
	leaf := d.focusedLeaf()
	if leaf == nil {
		return false, nil
	}
	return true, d.closePaneIn(ctx, d.tabs.Active, leaf.Pane.ID)
}

func (d *KeyboardDispatcher) closePaneIn(ctx context.Context, index int, paneID entity.PaneID) error {
	tab := d.tabs.At(index)
	if tab == nil {
		return fmt.Errorf("tab index %d out of range", index)
	}

	out, err := d.panes.Close(ctx, tab.Tree, paneID)
	if err != nil {
		return err
	}
	if !out.Emptied {
		return nil
	}

	_, err = d.tabsUC.Close(ctx, d.tabs, index, d.spawnRequest())
	return err
}

func (d *KeyboardDispatcher) navigate(ctx context.Context, direction usecase.NavigateDirection) (bool, error) {
	tab := d.tabs.ActiveTab()
	if tab == nil || tab.Tree == nil || tab.Tree.IsEmpty() {
		return false, nil
	}
	target, err := d.panes.NavigateFocus(ctx, tab.Tree, direction)
	if err != nil {
		return false, err
	}
	return target != nil, nil
}
