// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "time"

// PaneID uniquely identifies a pane within a run.
type PaneID string

// Orientation is the axis along which a split divides its space.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // Start is left, End is right
	OrientationVertical                      // Start is top, End is bottom
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// NodeKind tags a PaneNode as a leaf or a split.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeSplit
)

// Side names one of the two children of a split.
type Side int

const (
	SideStart Side = iota
	SideEnd
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideStart {
		return SideEnd
	}
	return SideStart
}

// PaneState is the lifecycle of the session hosted by a pane.
type PaneState int

const (
	PaneStarting PaneState = iota
	PaneRunning
	PaneFailed
	PaneExited
)

func (s PaneState) String() string {
	switch s {
	case PaneStarting:
		return "starting"
	case PaneRunning:
		return "running"
	case PaneFailed:
		return "failed"
	case PaneExited:
		return "exited"
	default:
		return "unknown"
	}
}

// SessionHandle is the opaque handle of a terminal session owned by a pane.
type SessionHandle interface {
	ID() string
	Terminate() error
}

// Pane is the leaf-level entity: one terminal session and its state.
type Pane struct {
	ID        PaneID
	Session   SessionHandle // nil until spawned, and after a failed spawn
	State     PaneState
	Failure   string // Set when State is PaneFailed
	CreatedAt time.Time
}

// NewPane creates a pane waiting for its session.
func NewPane(id PaneID) *Pane {
	return &Pane{
		ID:        id,
		State:     PaneStarting,
		CreatedAt: time.Now(),
	}
}

// Attach hands ownership of a running session to the pane.
func (p *Pane) Attach(session SessionHandle) {
	p.Session = session
	p.State = PaneRunning
	p.Failure = ""
}

// Fail records a session that could not be started.
func (p *Pane) Fail(err error) {
	p.Session = nil
	p.State = PaneFailed
	if err != nil {
		p.Failure = err.Error()
	}
}

// Destroy terminates the owned session, if any. Safe to call twice.
func (p *Pane) Destroy() error {
	if p.Session == nil {
		return nil
	}
	session := p.Session
	p.Session = nil
	if p.State == PaneRunning {
		p.State = PaneExited
	}
	return session.Terminate()
}

// PaneNode is a node of a pane tree. It is either:
//   - Leaf node: Kind == NodeLeaf, Pane is set
//   - Split node: Kind == NodeSplit, Start and End are both set
//
// Parent is a non-owning back-reference, nil for the root.
type PaneNode struct {
	ID     string
	Kind   NodeKind
	Pane   *Pane
	Parent *PaneNode

	Orientation Orientation
	Ratio       float64 // share of the split given to Start, 0.0-1.0
	Start       *PaneNode
	End         *PaneNode
}

// NewLeaf wraps a pane in a leaf node.
func NewLeaf(pane *Pane) *PaneNode {
	return &PaneNode{
		ID:   string(pane.ID),
		Kind: NodeLeaf,
		Pane: pane,
	}
}

// NewSplit creates a split owning start and end and links their parents.
func NewSplit(id string, orientation Orientation, ratio float64, start, end *PaneNode) *PaneNode {
	n := &PaneNode{
		ID:          id,
		Kind:        NodeSplit,
		Orientation: orientation,
		Ratio:       ratio,
		Start:       start,
		End:         end,
	}
	start.Parent = n
	end.Parent = n
	return n
}

// IsLeaf returns true if this node hosts a pane.
func (n *PaneNode) IsLeaf() bool {
	return n != nil && n.Kind == NodeLeaf
}

// IsSplit returns true if this node divides space between two children.
func (n *PaneNode) IsSplit() bool {
	return n != nil && n.Kind == NodeSplit
}

// Child returns the child on the given side of a split.
func (n *PaneNode) Child(side Side) *PaneNode {
	if side == SideStart {
		return n.Start
	}
	return n.End
}

// SideOf reports which side of n holds child. ok is false when child is
// not a direct child of n.
func (n *PaneNode) SideOf(child *PaneNode) (Side, bool) {
	switch {
	case child == nil || !n.IsSplit():
		return SideStart, false
	case n.Start == child:
		return SideStart, true
	case n.End == child:
		return SideEnd, true
	default:
		return SideStart, false
	}
}

// Sibling returns the other child of n's parent, nil for the root.
func (n *PaneNode) Sibling() *PaneNode {
	if n.Parent == nil {
		return nil
	}
	side, ok := n.Parent.SideOf(n)
	if !ok {
		return nil
	}
	return n.Parent.Child(side.Opposite())
}

// ReplaceChild swaps old for replacement in n and fixes replacement's parent.
func (n *PaneNode) ReplaceChild(old, replacement *PaneNode) bool {
	side, ok := n.SideOf(old)
	if !ok {
		return false
	}
	if side == SideStart {
		n.Start = replacement
	} else {
		n.End = replacement
	}
	replacement.Parent = n
	return true
}

// Walk traverses the subtree in pre-order, Start before End.
// Returns early if fn returns false.
func (n *PaneNode) Walk(fn func(*PaneNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.IsSplit() {
		if !n.Start.Walk(fn) {
			return false
		}
		return n.End.Walk(fn)
	}
	return true
}

// FindPane searches the subtree for the leaf hosting the given pane.
func (n *PaneNode) FindPane(id PaneID) *PaneNode {
	var found *PaneNode
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() && node.Pane != nil && node.Pane.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// FirstLeaf descends preferring Start at every split.
func (n *PaneNode) FirstLeaf() *PaneNode {
	node := n
	for node != nil && node.IsSplit() {
		node = node.Start
	}
	return node
}

// Leaves returns the leaves of the subtree in pre-order.
func (n *PaneNode) Leaves() []*PaneNode {
	var leaves []*PaneNode
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// LeafCount returns the number of leaf nodes (panes) in the subtree.
func (n *PaneNode) LeafCount() int {
	count := 0
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// IsDescendantOf reports whether n lies in the subtree rooted at ancestor.
func (n *PaneNode) IsDescendantOf(ancestor *PaneNode) bool {
	for node := n; node != nil; node = node.Parent {
		if node == ancestor {
			return true
		}
	}
	return false
}
