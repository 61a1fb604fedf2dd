// Package layout draws tabs and pane trees as terminal text.
package layout

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/ui/theme"
)

// minBoxSize is the smallest extent that fits a border around content.
const minBoxSize = 3

// CloseGlyph marks the close button drawn in a pane's top border, one
// cell left of the top-right corner. Boxes narrower than
// minCloseButtonWidth have no button.
const (
	CloseGlyph          = "×"
	minCloseButtonWidth = 5
)

// ContentFunc returns up to n lines of output for a pane, oldest first.
type ContentFunc func(pane *entity.Pane, n int) []string

// TreeRenderer draws one tab's pane tree. Every leaf gets a bordered box
// sized from entity.PaneTree.Regions, so the picture always matches the
// geometry used for pointer hit-testing.
type TreeRenderer struct {
	styles  *theme.Styles
	content ContentFunc
}

// NewTreeRenderer creates a renderer. content may be nil.
func NewTreeRenderer(styles *theme.Styles, content ContentFunc) *TreeRenderer {
	if styles == nil {
		styles = theme.NewStyles(nil)
	}
	return &TreeRenderer{styles: styles, content: content}
}

// SetStyles swaps the styles after a theme reload.
func (r *TreeRenderer) SetStyles(styles *theme.Styles) {
	if styles != nil {
		r.styles = styles
	}
}

// Render draws tree into exactly height lines of width cells.
func (r *TreeRenderer) Render(tree *entity.PaneTree, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if tree.IsEmpty() {
		return blankBlock(width, height)
	}

	regions := tree.Regions(width, height)
	blocks := make([][]string, len(regions))
	for i, region := range regions {
		focused := region.Pane.ID == tree.FocusedPaneID
		blocks[i] = r.renderPane(region, focused)
	}

	// Regions tile the area, so each row is the concatenation of the
	// blocks crossing it, left to right.
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return regions[order[a]].Rect.X < regions[order[b]].Rect.X
	})

	rows := make([]string, height)
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		for _, i := range order {
			rect := regions[i].Rect
			if y < rect.Y || y >= rect.Y+rect.H {
				continue
			}
			sb.WriteString(blocks[i][y-rect.Y])
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func (r *TreeRenderer) renderPane(region entity.Region, focused bool) []string {
	w, h := region.Rect.W, region.Rect.H
	if w < minBoxSize || h < minBoxSize {
		return strings.Split(blankBlock(w, h), "\n")
	}
	innerW, innerH := w-2, h-2

	var lines []string
	switch {
	case region.Pane.State == entity.PaneFailed:
		lines = []string{r.styles.PaneFailed.Render(fitLine("session failed: "+region.Pane.Failure, innerW))}
	case r.content != nil:
		for _, line := range r.content(region.Pane, innerH) {
			lines = append(lines, r.styles.PaneText.Render(fitLine(line, innerW)))
		}
	}
	if len(lines) > innerH {
		lines = lines[len(lines)-innerH:]
	}
	for len(lines) < innerH {
		lines = append(lines, strings.Repeat(" ", innerW))
	}

	box := r.styles.UnfocusedPane
	if focused {
		box = r.styles.FocusedPane
	}
	out := fitBlock(strings.Split(box.Render(strings.Join(lines, "\n")), "\n"), w, h)
	if w >= minCloseButtonWidth {
		out[0] = ansi.Cut(out[0], 0, w-2) + r.styles.PaneClose.Render(CloseGlyph) + ansi.Cut(out[0], w-1, w)
	}
	return out
}

// CloseButtonAt returns the pane whose close button Render draws at
// (x, y) for a width x height area.
func CloseButtonAt(tree *entity.PaneTree, width, height, x, y int) (entity.PaneID, bool) {
	for _, region := range tree.Regions(width, height) {
		rect := region.Rect
		if rect.W < minCloseButtonWidth || rect.H < minBoxSize {
			continue
		}
		if y == rect.Y && x == rect.X+rect.W-2 {
			return region.Pane.ID, true
		}
	}
	return "", false
}

// fitLine truncates or pads s to exactly width cells.
func fitLine(s string, width int) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

func fitBlock(lines []string, width, height int) []string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

func blankBlock(width, height int) string {
	if height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", max(width, 0))
	return strings.TrimSuffix(strings.Repeat(row+"\n", height), "\n")
}
