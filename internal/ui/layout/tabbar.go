package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/ui/theme"
)

// maxTabTitleWidth caps the cells a single title may take in the bar.
const maxTabTitleWidth = 24

// TabLabel is the text shown for the tab at index, before styling.
func TabLabel(index int, tab *entity.Tab) string {
	title := runewidth.Truncate(tab.Title, maxTabTitleWidth, "…")
	label := fmt.Sprintf("%d %s", index+1, title)
	if n := tab.PaneCount(); n > 1 {
		label += fmt.Sprintf(" [%d]", n)
	}
	return label
}

// RenderTabBar draws the tab bar as a single line of width cells.
func RenderTabBar(styles *theme.Styles, tabs *entity.TabSet, width int) string {
	if width <= 0 {
		return ""
	}
	if styles == nil {
		styles = theme.NewStyles(nil)
	}

	parts := make([]string, 0, tabs.Count())
	for i, tab := range tabs.Tabs {
		style := styles.InactiveTab
		if i == tabs.Active {
			style = styles.ActiveTab
		}
		parts = append(parts, style.Render(TabLabel(i, tab)))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return styles.TabBar.
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(bar)
}

// RenderStatus draws the one-line status bar.
func RenderStatus(styles *theme.Styles, text string, isError bool, width int) string {
	if width <= 0 {
		return ""
	}
	if styles == nil {
		styles = theme.NewStyles(nil)
	}
	style := styles.StatusBar
	if isError {
		style = styles.StatusError
	}
	text = strings.ReplaceAll(text, "\n", " ")
	return style.
		Width(width).
		MaxWidth(width).
		MaxHeight(1).
		Render(runewidth.Truncate(text, width, "…"))
}

// TabAt returns the index of the tab label drawn at column x, using the
// same styles RenderTabBar does.
func TabAt(styles *theme.Styles, tabs *entity.TabSet, x int) (int, bool) {
	if x < 0 {
		return 0, false
	}
	if styles == nil {
		styles = theme.NewStyles(nil)
	}
	start := 0
	for i, tab := range tabs.Tabs {
		style := styles.InactiveTab
		if i == tabs.Active {
			style = styles.ActiveTab
		}
		end := start + lipgloss.Width(style.Render(TabLabel(i, tab)))
		if x < end {
			return i, true
		}
		start = end
	}
	return 0, false
}
