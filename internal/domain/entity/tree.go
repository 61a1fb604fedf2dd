package entity

import "fmt"

// PaneTree is the layout of one tab: a binary tree of splits and leaves.
// Root is nil only while the owning tab is being torn down.
type PaneTree struct {
	Root          *PaneNode
	FocusedPaneID PaneID // Last focused leaf, may be stale after closes
}

// NewPaneTree creates a tree holding a single leaf, focused.
func NewPaneTree(initial *Pane) *PaneTree {
	return &PaneTree{
		Root:          NewLeaf(initial),
		FocusedPaneID: initial.ID,
	}
}

// IsEmpty reports whether the tree has been torn down.
func (t *PaneTree) IsEmpty() bool {
	return t == nil || t.Root == nil
}

// PaneCount returns the number of panes in the tree.
func (t *PaneTree) PaneCount() int {
	if t.IsEmpty() {
		return 0
	}
	return t.Root.LeafCount()
}

// FindPane searches for a pane by ID in the tree.
func (t *PaneTree) FindPane(id PaneID) *PaneNode {
	if t.IsEmpty() {
		return nil
	}
	return t.Root.FindPane(id)
}

// Contains reports whether node is currently linked under Root.
func (t *PaneTree) Contains(node *PaneNode) bool {
	if t.IsEmpty() || node == nil {
		return false
	}
	return node.IsDescendantOf(t.Root)
}

// FirstLeaf returns the leaf reached by always descending into Start.
func (t *PaneTree) FirstLeaf() *PaneNode {
	if t.IsEmpty() {
		return nil
	}
	return t.Root.FirstLeaf()
}

// FocusedLeaf returns the focused leaf, or nil if none is recorded or the
// recorded pane is gone.
func (t *PaneTree) FocusedLeaf() *PaneNode {
	if t.FocusedPaneID == "" {
		return nil
	}
	return t.FindPane(t.FocusedPaneID)
}

// Focus records id as focused. Returns false if no such leaf exists.
func (t *PaneTree) Focus(id PaneID) bool {
	if t.FindPane(id) == nil {
		return false
	}
	t.FocusedPaneID = id
	return true
}

// Leaves returns all leaves in pre-order.
func (t *PaneTree) Leaves() []*PaneNode {
	if t.IsEmpty() {
		return nil
	}
	return t.Root.Leaves()
}

// Panes returns the pane of every leaf in pre-order.
func (t *PaneTree) Panes() []*Pane {
	leaves := t.Leaves()
	panes := make([]*Pane, 0, len(leaves))
	for _, leaf := range leaves {
		panes = append(panes, leaf.Pane)
	}
	return panes
}

// Validate checks the tree invariants: no cycles, consistent parent
// links, every split with two distinct present children, every leaf with
// a pane and unique pane IDs.
func (t *PaneTree) Validate() error {
	if t.IsEmpty() {
		return nil
	}
	if t.Root.Parent != nil {
		return fmt.Errorf("%w: root %q has a parent", ErrStructuralViolation, t.Root.ID)
	}

	seen := make(map[*PaneNode]bool)
	panes := make(map[PaneID]bool)
	var check func(n *PaneNode) error
	check = func(n *PaneNode) error {
		if seen[n] {
			return fmt.Errorf("%w: node %q reachable twice", ErrStructuralViolation, n.ID)
		}
		seen[n] = true

		switch n.Kind {
		case NodeLeaf:
			if n.Pane == nil {
				return fmt.Errorf("%w: leaf %q has no pane", ErrStructuralViolation, n.ID)
			}
			if n.Start != nil || n.End != nil {
				return fmt.Errorf("%w: leaf %q has children", ErrStructuralViolation, n.ID)
			}
			if panes[n.Pane.ID] {
				return fmt.Errorf("%w: pane %q appears twice", ErrStructuralViolation, n.Pane.ID)
			}
			panes[n.Pane.ID] = true
			return nil
		case NodeSplit:
			if n.Start == nil || n.End == nil {
				return fmt.Errorf("%w: split %q is missing a child", ErrStructuralViolation, n.ID)
			}
			if n.Start == n.End {
				return fmt.Errorf("%w: split %q holds the same child twice", ErrStructuralViolation, n.ID)
			}
			if n.Ratio <= 0 || n.Ratio >= 1 {
				return fmt.Errorf("%w: split %q ratio %v out of range", ErrStructuralViolation, n.ID, n.Ratio)
			}
			for _, child := range []*PaneNode{n.Start, n.End} {
				if child.Parent != n {
					return fmt.Errorf("%w: child %q of %q has a wrong parent link", ErrStructuralViolation, child.ID, n.ID)
				}
				if err := check(child); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("%w: node %q has unknown kind %d", ErrStructuralViolation, n.ID, n.Kind)
		}
	}
	return check(t.Root)
}

// StructurallyEqual compares two subtrees by shape, orientation, ratio and
// pane identity. Node IDs of splits are ignored.
func StructurallyEqual(a, b *PaneNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.IsLeaf() {
		if a.Pane == nil || b.Pane == nil {
			return a.Pane == b.Pane
		}
		return a.Pane.ID == b.Pane.ID
	}
	return a.Orientation == b.Orientation &&
		a.Ratio == b.Ratio &&
		StructurallyEqual(a.Start, b.Start) &&
		StructurallyEqual(a.End, b.End)
}
