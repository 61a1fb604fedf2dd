package layout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
)

func splitTree(t *testing.T, orientation entity.Orientation) *entity.PaneTree {
	t.Helper()
	n := 0
	uc := usecase.NewManagePanesUseCase(func() string {
		n++
		return fmt.Sprintf("split-%d", n)
	}, nil)

	tree := entity.NewPaneTree(entity.NewPane("A"))
	_, err := uc.SplitLeaf(context.Background(), tree, tree.Root, orientation, 0.5, entity.NewPane("B"))
	require.NoError(t, err)
	return tree
}

func paneNames(pane *entity.Pane, n int) []string {
	return []string{"pane " + string(pane.ID)}
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestTreeRenderer_FillsArea(t *testing.T) {
	tests := []struct {
		name          string
		orientation   entity.Orientation
		width, height int
	}{
		{name: "side by side", orientation: entity.OrientationHorizontal, width: 40, height: 10},
		{name: "stacked", orientation: entity.OrientationVertical, width: 33, height: 11},
		{name: "too small for borders", orientation: entity.OrientationHorizontal, width: 4, height: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewTreeRenderer(nil, paneNames).Render(splitTree(t, tt.orientation), tt.width, tt.height)

			lines := strings.Split(out, "\n")
			require.Len(t, lines, tt.height)
			for i, line := range lines {
				assert.Equal(t, tt.width, lipgloss.Width(line), "line %d", i)
			}
		})
	}
}

func TestTreeRenderer_SideBySideContent(t *testing.T) {
	out := NewTreeRenderer(nil, paneNames).Render(splitTree(t, entity.OrientationHorizontal), 40, 6)
	lines := plainLines(out)

	assert.Equal(t, "╭", string([]rune(lines[0])[0]))
	assert.Equal(t, "╭", string([]rune(lines[0])[20]), "second box starts at the split")
	assert.Contains(t, lines[1], "pane A")
	assert.Contains(t, lines[1], "pane B")
	assert.Less(t, strings.Index(lines[1], "pane A"), strings.Index(lines[1], "pane B"))
}

func TestTreeRenderer_DrawsCloseButtons(t *testing.T) {
	tree := splitTree(t, entity.OrientationHorizontal)
	lines := plainLines(NewTreeRenderer(nil, paneNames).Render(tree, 40, 6))
	top := []rune(lines[0])

	assert.Equal(t, CloseGlyph, string(top[18]))
	assert.Equal(t, "╮", string(top[19]))
	assert.Equal(t, CloseGlyph, string(top[38]))
	assert.Equal(t, 40, lipgloss.Width(lines[0]))

	narrow := plainLines(NewTreeRenderer(nil, paneNames).Render(tree, 8, 6))
	assert.NotContains(t, narrow[0], CloseGlyph)
}

func TestCloseButtonAt(t *testing.T) {
	tree := splitTree(t, entity.OrientationHorizontal)

	id, ok := CloseButtonAt(tree, 40, 6, 18, 0)
	assert.True(t, ok)
	assert.Equal(t, entity.PaneID("A"), id)

	id, ok = CloseButtonAt(tree, 40, 6, 38, 0)
	assert.True(t, ok)
	assert.Equal(t, entity.PaneID("B"), id)

	_, ok = CloseButtonAt(tree, 40, 6, 17, 0)
	assert.False(t, ok)
	_, ok = CloseButtonAt(tree, 40, 6, 18, 1)
	assert.False(t, ok)
	_, ok = CloseButtonAt(tree, 8, 6, 2, 0)
	assert.False(t, ok, "boxes too narrow for a button")
	_, ok = CloseButtonAt(&entity.PaneTree{}, 40, 6, 18, 0)
	assert.False(t, ok)
}

func TestTreeRenderer_StackedContent(t *testing.T) {
	out := NewTreeRenderer(nil, paneNames).Render(splitTree(t, entity.OrientationVertical), 20, 8)
	lines := plainLines(out)

	assert.Contains(t, lines[1], "pane A")
	assert.Contains(t, lines[5], "pane B")
}

func TestTreeRenderer_KeepsNewestLines(t *testing.T) {
	tree := entity.NewPaneTree(entity.NewPane("A"))
	content := func(*entity.Pane, int) []string {
		return []string{"one", "two", "three", "four"}
	}

	lines := plainLines(NewTreeRenderer(nil, content).Render(tree, 12, 4))
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "three")
	assert.Contains(t, lines[2], "four")
}

func TestTreeRenderer_TruncatesWideLines(t *testing.T) {
	tree := entity.NewPaneTree(entity.NewPane("A"))
	content := func(*entity.Pane, int) []string {
		return []string{strings.Repeat("日本", 20)}
	}

	out := NewTreeRenderer(nil, content).Render(tree, 11, 3)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 11, lipgloss.Width(line))
	}
}

func TestTreeRenderer_FailedPane(t *testing.T) {
	pane := entity.NewPane("A")
	pane.Fail(fmt.Errorf("no such shell"))
	tree := entity.NewPaneTree(pane)

	out := ansi.Strip(NewTreeRenderer(nil, nil).Render(tree, 60, 3))
	assert.Contains(t, out, "session failed: no such shell")
}

func TestTreeRenderer_EmptyTree(t *testing.T) {
	out := NewTreeRenderer(nil, nil).Render(&entity.PaneTree{}, 5, 2)
	assert.Equal(t, "     \n     ", out)
	assert.Empty(t, NewTreeRenderer(nil, nil).Render(&entity.PaneTree{}, 0, 2))
}

func TestTabLabel(t *testing.T) {
	tab := &entity.Tab{Title: "Terminal 1", Tree: entity.NewPaneTree(entity.NewPane("A"))}
	assert.Equal(t, "1 Terminal 1", TabLabel(0, tab))

	tab.Title = strings.Repeat("x", 40)
	label := TabLabel(2, tab)
	assert.True(t, strings.HasPrefix(label, "3 "))
	assert.True(t, strings.HasSuffix(label, "…"))
	assert.Equal(t, 2+maxTabTitleWidth, lipgloss.Width(label))

	tab.Tree = splitTree(t, entity.OrientationHorizontal)
	tab.Title = "Build"
	assert.Equal(t, "3 Build [2]", TabLabel(2, tab))
}

func TestRenderTabBar(t *testing.T) {
	tabs := entity.NewTabSet("")
	tabs.Append("t1", entity.NewPaneTree(entity.NewPane("A")))
	tabs.Append("t2", entity.NewPaneTree(entity.NewPane("B")))

	bar := RenderTabBar(nil, tabs, 50)
	assert.Equal(t, 50, lipgloss.Width(bar))
	assert.Equal(t, 1, lipgloss.Height(bar))

	plain := ansi.Strip(bar)
	assert.Contains(t, plain, "1 Terminal 1")
	assert.Contains(t, plain, "2 Terminal 2")

	narrow := RenderTabBar(nil, tabs, 8)
	assert.LessOrEqual(t, lipgloss.Width(narrow), 8)
}

func TestRenderStatus(t *testing.T) {
	status := RenderStatus(nil, "config reload failed:\nbad toml", true, 30)
	assert.Equal(t, 1, lipgloss.Height(status))
	assert.Equal(t, 30, lipgloss.Width(status))
	assert.Contains(t, ansi.Strip(status), "config reload failed: bad")
}

func TestTabAt(t *testing.T) {
	tabs := entity.NewTabSet("")
	tabs.Append("t1", entity.NewPaneTree(entity.NewPane("A")))
	tabs.Append("t2", entity.NewPaneTree(entity.NewPane("B")))

	// Labels are padded by one cell on each side: " 1 Terminal 1 ".
	first := len("1 Terminal 1") + 2

	idx, ok := TabAt(nil, tabs, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = TabAt(nil, tabs, first-1)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = TabAt(nil, tabs, first)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = TabAt(nil, tabs, 2*first+5)
	assert.False(t, ok)
	_, ok = TabAt(nil, tabs, -1)
	assert.False(t, ok)
}
