package entity

// PaneRect represents a pane's position and size in terminal cells.
type PaneRect struct {
	PaneID PaneID
	X, Y   int // Top-left position relative to the layout area
	W, H   int // Width and height
}

// Region is a visible leaf together with the split that placed it.
// Root leaves have HasParent false.
type Region struct {
	Rect        PaneRect
	Pane        *Pane
	Depth       int
	HasParent   bool
	Orientation Orientation // of the enclosing split
	Ratio       float64     // of the enclosing split
	Side        Side        // side of the enclosing split this leaf sits on
}

// Regions projects the tree onto a width x height area, returning one
// region per leaf in pre-order.
func (t *PaneTree) Regions(width, height int) []Region {
	if t.IsEmpty() {
		return nil
	}
	var regions []Region
	var layout func(n *PaneNode, x, y, w, h, depth int)
	layout = func(n *PaneNode, x, y, w, h, depth int) {
		if n.IsLeaf() {
			r := Region{
				Rect:  PaneRect{PaneID: n.Pane.ID, X: x, Y: y, W: w, H: h},
				Pane:  n.Pane,
				Depth: depth,
			}
			if p := n.Parent; p != nil {
				side, _ := p.SideOf(n)
				r.HasParent = true
				r.Orientation = p.Orientation
				r.Ratio = p.Ratio
				r.Side = side
			}
			regions = append(regions, r)
			return
		}
		if n.Orientation == OrientationHorizontal {
			sw := splitExtent(w, n.Ratio)
			layout(n.Start, x, y, sw, h, depth+1)
			layout(n.End, x+sw, y, w-sw, h, depth+1)
			return
		}
		sh := splitExtent(h, n.Ratio)
		layout(n.Start, x, y, w, sh, depth+1)
		layout(n.End, x, y+sh, w, h-sh, depth+1)
	}
	layout(t.Root, 0, 0, width, height, 0)
	return regions
}

// splitExtent returns the cells given to the Start side, keeping at least
// one cell for each side whenever the total allows it.
func splitExtent(total int, ratio float64) int {
	if total < 2 {
		return total
	}
	n := int(float64(total) * ratio)
	if n < 1 {
		n = 1
	}
	if n > total-1 {
		n = total - 1
	}
	return n
}
