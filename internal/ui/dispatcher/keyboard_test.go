package dispatcher_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/port/mocks"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/ui/dispatcher"
	"github.com/bnema/tessera/internal/ui/input"
)

type fixture struct {
	d        *dispatcher.KeyboardDispatcher
	tabs     *entity.TabSet
	sessions map[entity.PaneID]*mocks.MockTerminalSession
	settings *mocks.MockSettingsSource
	themes   *mocks.MockThemeLoader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	sessions := make(map[entity.PaneID]*mocks.MockTerminalSession)
	spawner := mocks.NewMockSessionSpawner(t)
	spawner.EXPECT().
		Spawn(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.SpawnRequest) (port.TerminalSession, error) {
			session := mocks.NewMockTerminalSession(t)
			session.EXPECT().ID().Return("sess-" + string(req.PaneID)).Maybe()
			session.EXPECT().Terminate().Return(nil).Maybe()
			session.EXPECT().Apply(mock.Anything).Return(nil).Maybe()
			sessions[req.PaneID] = session
			return session, nil
		}).
		Maybe()

	settings := mocks.NewMockSettingsSource(t)
	settings.EXPECT().Settings().Return(port.Settings{Shell: "/bin/sh", SplitRatio: 0.5}).Maybe()
	themes := mocks.NewMockThemeLoader(t)

	tabs := entity.NewTabSet("Terminal")
	tabsUC := usecase.NewManageTabsUseCase(ids, spawner)
	_, err := tabsUC.Create(ctx, tabs, port.SpawnRequest{})
	require.NoError(t, err)

	d := dispatcher.NewKeyboardDispatcher(ctx, dispatcher.Deps{
		Tabs:     tabs,
		Panes:    usecase.NewManagePanesUseCase(ids, spawner),
		TabsUC:   tabsUC,
		Reload:   usecase.NewReloadAppearanceUseCase(settings, themes),
		Settings: settings,
	})
	return &fixture{d: d, tabs: tabs, sessions: sessions, settings: settings, themes: themes}
}

func chord(t *testing.T, cmd input.Command) input.KeyEvent {
	t.Helper()
	c := input.ParseChord(input.DefaultChords[cmd])
	require.True(t, c.IsSet())
	return input.KeyEvent{Key: c.Key, Modifiers: c.Modifiers}
}

func activeTree(f *fixture) *entity.PaneTree {
	return f.tabs.ActiveTab().Tree
}

func TestHandleKey_TwoNewTabs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.Equal(t, 1, f.tabs.Count())

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNewTab)))
	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNewTab)))

	assert.Equal(t, 3, f.tabs.Count())
	assert.Equal(t, 2, f.tabs.Active)
	assert.Equal(t, "Terminal 3", f.tabs.ActiveTab().Title)
}

func TestHandleKey_SplitThenCloseRestoresTree(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	tree := activeTree(f)
	original := tree.Root
	originalID := original.Pane.ID

	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandSplitVertical)))
	require.Equal(t, 2, tree.PaneCount())
	require.True(t, tree.Root.IsSplit())
	assert.Equal(t, entity.OrientationHorizontal, tree.Root.Orientation)
	newID := tree.FocusedPaneID
	assert.NotEqual(t, originalID, newID)

	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandClosePanel)))

	assert.Same(t, original, tree.Root)
	assert.True(t, tree.Root.IsLeaf())
	assert.Nil(t, tree.Root.Parent)
	assert.Equal(t, originalID, tree.FocusedPaneID)
	require.NoError(t, tree.Validate())
}

func TestHandleKey_SplitHorizontalStacks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandSplitHorizontal)))
	assert.Equal(t, entity.OrientationVertical, activeTree(f).Root.Orientation)
}

func TestHandleKey_SoftFocusPassesThroughAtEdge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Single pane: nowhere to go, the key belongs to the session.
	assert.False(t, f.d.HandleKey(ctx, chord(t, input.CommandFocusLeft)))

	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandSplitVertical)))
	tree := activeTree(f)
	right := tree.FocusedPaneID

	assert.False(t, f.d.HandleKey(ctx, chord(t, input.CommandFocusRight)), "already rightmost")
	assert.Equal(t, right, tree.FocusedPaneID)

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandFocusLeft)))
	assert.Equal(t, tree.Root.Start.Pane.ID, tree.FocusedPaneID)
}

func TestHandleKey_SoftMatchDoesNotFallThrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quit := false
	f.d.SetOnQuit(func() { quit = true })

	// focus_left and quit share a chord; focus_left has priority.
	f.d.SetCommandTable(input.NewCommandTable(ctx, map[string]string{
		"focus_left": "ctrl+q",
		"quit":       "ctrl+q",
	}))

	consumed := f.d.HandleKey(ctx, input.KeyEvent{Key: input.Key('q'), Modifiers: input.ModCtrl})
	assert.False(t, consumed)
	assert.False(t, quit, "lower-priority command must not run")
}

func TestHandleKey_UnmatchedPassesThrough(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.False(t, f.d.HandleKey(ctx, input.KeyEvent{Key: input.Key('a')}))
	assert.False(t, f.d.HandleKey(ctx, input.KeyEvent{Key: input.Key('d'), Modifiers: input.ModCtrl | input.ModShift}))
}

func TestHandleKey_TabSwitch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNewTab)))
	require.Equal(t, 1, f.tabs.Active)

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandTab1)))
	assert.Equal(t, 0, f.tabs.Active)

	// Out of range is consumed but changes nothing.
	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandTab9)))
	assert.Equal(t, 0, f.tabs.Active)
}

func TestHandleKey_NextAndPreviousTabWrap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNewTab)))
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNewTab)))
	require.Equal(t, 2, f.tabs.Active)

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNextTab)))
	assert.Equal(t, 0, f.tabs.Active)
	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNextTab)))
	assert.Equal(t, 1, f.tabs.Active)

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandPreviousTab)))
	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandPreviousTab)))
	assert.Equal(t, 2, f.tabs.Active)
}

func TestRenameTab_FollowsTabAcrossClose(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandNewTab)))

	var target entity.TabID
	f.d.SetOnRenameRequested(func(tab entity.TabID, _ string) { target = tab })
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandRenameTab)))
	require.Equal(t, "Terminal 2", f.tabs.At(1).Title)

	// The tab before it closes, shifting it to index 0.
	require.True(t, f.d.SwitchTab(ctx, 0))
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandCloseTab)))
	require.Equal(t, 1, f.tabs.Count())

	assert.True(t, f.d.RenameTab(ctx, target, "logs"))
	assert.Equal(t, "logs", f.tabs.At(0).Title)

	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandCloseTab)))
	assert.False(t, f.d.RenameTab(ctx, target, "gone"))
	assert.NotEqual(t, "gone", f.tabs.ActiveTab().Title)
}

func TestHandleKey_CloseLastPaneRecreatesTab(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := f.tabs.ActiveTab()
	firstPane := first.Tree.Root.Pane.ID

	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandClosePanel)))

	require.Equal(t, 1, f.tabs.Count())
	assert.NotEqual(t, first.ID, f.tabs.ActiveTab().ID)
	assert.Equal(t, "Terminal 2", f.tabs.ActiveTab().Title)
	f.sessions[firstPane].AssertCalled(t, "Terminate")
}

func TestHandleKey_RenameAndQuitHooks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var gotTab entity.TabID
	var gotTitle string
	f.d.SetOnRenameRequested(func(tab entity.TabID, title string) {
		gotTab, gotTitle = tab, title
	})
	quit := false
	f.d.SetOnQuit(func() { quit = true })

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandRenameTab)))
	assert.Equal(t, f.tabs.ActiveTab().ID, gotTab)
	assert.Equal(t, "Terminal 1", gotTitle)

	assert.True(t, f.d.RenameTab(ctx, gotTab, "build"))
	assert.Equal(t, "build", f.tabs.ActiveTab().Title)
	assert.False(t, f.d.RenameTab(ctx, gotTab, "  "))
	assert.Equal(t, "build", f.tabs.ActiveTab().Title)

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandQuit)))
	assert.True(t, quit)
}

func TestHandleKey_ShowKeybindings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var shown port.KeybindingsConfig
	f.d.SetOnShowKeybindings(func(cfg port.KeybindingsConfig) { shown = cfg })

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandShowKeybindings)))
	assert.NotEmpty(t, shown.Groups)
}

func TestHandleSessionExit_ClosesPaneAndCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandSplitVertical)))
	tree := activeTree(f)
	right := tree.FocusedPaneID

	handled := f.d.HandleSessionExit(ctx, port.SessionExit{SessionID: "sess-" + string(right)})
	assert.True(t, handled)
	assert.Equal(t, 1, tree.PaneCount())
	assert.Nil(t, tree.FindPane(right))

	assert.False(t, f.d.HandleSessionExit(ctx, port.SessionExit{SessionID: "sess-gone"}))
}

func TestClosePane_ByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandSplitVertical)))
	tree := activeTree(f)
	left := tree.Root.Start.Pane.ID

	closed, err := f.d.ClosePane(ctx, left)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Nil(t, tree.FindPane(left))

	_, err = f.d.ClosePane(ctx, left)
	assert.ErrorIs(t, err, entity.ErrStaleLeaf)
}

func TestReloadAppearance_RebindsAndKeepsLayout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.True(t, f.d.HandleKey(ctx, chord(t, input.CommandSplitVertical)))
	before := activeTree(f).Root

	f.settings.ExpectedCalls = nil
	f.settings.EXPECT().Reload(mock.Anything).Return(nil)
	f.settings.EXPECT().Settings().Return(port.Settings{
		SplitRatio:       0.5,
		TabTitleTemplate: "Shell",
		Keybindings:      map[string]string{"new_tab": "ctrl+t"},
	})

	var changed *usecase.ReloadAppearanceOutput
	f.d.SetOnReloaded(func(out *usecase.ReloadAppearanceOutput) { changed = out })

	assert.True(t, f.d.HandleKey(ctx, chord(t, input.CommandReloadConfig)))
	require.NotNil(t, changed)
	assert.NoError(t, changed.ConfigErr)
	assert.Equal(t, "Shell", changed.Settings.TabTitleTemplate)
	assert.Same(t, before, activeTree(f).Root)

	assert.True(t, f.d.HandleKey(ctx, input.KeyEvent{Key: input.Key('t'), Modifiers: input.ModCtrl}))
	assert.Equal(t, "Shell 2", f.tabs.ActiveTab().Title)
}
