package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// DefaultSplitRatio is the share given to the original pane on split.
const DefaultSplitRatio = 0.5

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// axis returns the split orientation a direction moves along.
func (d NavigateDirection) axis() (entity.Orientation, bool) {
	switch d {
	case NavLeft, NavRight:
		return entity.OrientationHorizontal, true
	case NavUp, NavDown:
		return entity.OrientationVertical, true
	default:
		return 0, false
	}
}

// departsFrom returns the side a move in this direction leaves from:
// moving right or down leaves Start, moving left or up leaves End.
func (d NavigateDirection) departsFrom() entity.Side {
	if d == NavRight || d == NavDown {
		return entity.SideStart
	}
	return entity.SideEnd
}

// ManagePanesUseCase handles pane tree operations.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
	spawner     port.SessionSpawner
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(idGenerator IDGenerator, spawner port.SessionSpawner) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
		spawner:     spawner,
	}
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Tree        *entity.PaneTree
	TargetID    entity.PaneID
	Orientation entity.Orientation
	Ratio       float64 // DefaultSplitRatio when outside (0, 1)
	Spawn       port.SpawnRequest
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewLeaf *entity.PaneNode
	Split   *entity.PaneNode
	// SpawnErr is set when the new pane's session failed to start. The
	// split still happened and the pane shows the failure.
	SpawnErr error
}

// Split replaces the target leaf with a split holding the target at Start
// and a new leaf at End, spawns the new leaf's session and focuses it.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage panes use case is nil")
	}
	if input.Tree == nil || input.Tree.IsEmpty() {
		return nil, fmt.Errorf("pane tree is required")
	}

	target := input.Tree.FindPane(input.TargetID)
	if target == nil {
		return nil, entity.StaleReference("split", input.TargetID)
	}

	pane := entity.NewPane(entity.PaneID(uc.idGenerator()))
	req := input.Spawn
	req.PaneID = pane.ID
	spawnErr := startSession(ctx, uc.spawner, pane, req)

	split, err := uc.SplitLeaf(ctx, input.Tree, target, input.Orientation, input.Ratio, pane)
	if err != nil {
		_ = pane.Destroy()
		return nil, err
	}

	log.Info().
		Str("target_id", string(input.TargetID)).
		Str("new_pane_id", string(pane.ID)).
		Str("orientation", input.Orientation.String()).
		Float64("ratio", split.Ratio).
		Msg("pane split completed")

	return &SplitPaneOutput{
		NewLeaf:  split.End,
		Split:    split,
		SpawnErr: spawnErr,
	}, nil
}

// SplitLeaf performs the tree edit of Split without touching sessions.
// target must be a leaf currently linked into tree.
func (uc *ManagePanesUseCase) SplitLeaf(
	ctx context.Context,
	tree *entity.PaneTree,
	target *entity.PaneNode,
	orientation entity.Orientation,
	ratio float64,
	pane *entity.Pane,
) (*entity.PaneNode, error) {
	log := logging.FromContext(ctx)

	if !tree.Contains(target) {
		ref := "<nil>"
		if target != nil {
			ref = target.ID
		}
		return nil, entity.StaleReference("split", ref)
	}
	if !target.IsLeaf() {
		return nil, fmt.Errorf("split %s: %w", target.ID, entity.ErrNotLeaf)
	}
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultSplitRatio
	}

	oldParent := target.Parent
	newLeaf := entity.NewLeaf(pane)
	split := entity.NewSplit(uc.idGenerator(), orientation, ratio, target, newLeaf)

	if oldParent == nil {
		tree.Root = split
	} else {
		oldParent.ReplaceChild(target, split)
	}
	tree.FocusedPaneID = pane.ID

	log.Debug().
		Str("split_id", split.ID).
		Bool("was_root", oldParent == nil).
		Msg("leaf replaced by split")

	if err := entity.CheckInvariants(tree); err != nil {
		return nil, err
	}
	return split, nil
}

// ClosePaneOutput contains the result of closing a pane.
type ClosePaneOutput struct {
	// Emptied is true when the closed pane was the root; the owning tab
	// must be torn down.
	Emptied bool
	// Promoted is the sibling subtree that took the parent's place.
	Promoted *entity.PaneNode
	// Focused is the leaf focused after the close, nil when emptied.
	Focused *entity.PaneNode
}

// Close removes a pane, terminates its session and promotes its sibling
// into the grandparent's link. Exactly one level collapses.
func (uc *ManagePanesUseCase) Close(ctx context.Context, tree *entity.PaneTree, paneID entity.PaneID) (*ClosePaneOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage panes use case is nil")
	}
	if tree == nil {
		return nil, fmt.Errorf("pane tree is required")
	}

	node := tree.FindPane(paneID)
	if node == nil {
		return nil, entity.StaleReference("close", paneID)
	}

	if err := node.Pane.Destroy(); err != nil {
		log.Warn().Err(err).Str("pane_id", string(paneID)).Msg("session termination failed")
	}

	parent := node.Parent
	if parent == nil {
		log.Info().Str("pane_id", string(paneID)).Msg("closing last pane in tree")
		tree.Root = nil
		tree.FocusedPaneID = ""
		return &ClosePaneOutput{Emptied: true}, nil
	}

	sibling := node.Sibling()
	if sibling == nil {
		return nil, fmt.Errorf("close %s: %w: no sibling", paneID, entity.ErrStructuralViolation)
	}

	grandparent := parent.Parent
	if grandparent == nil {
		tree.Root = sibling
		sibling.Parent = nil
	} else {
		grandparent.ReplaceChild(parent, sibling)
	}
	node.Parent = nil
	parent.Start, parent.End, parent.Parent = nil, nil, nil

	if tree.FocusedPaneID == paneID || tree.FocusedLeaf() == nil {
		if first := sibling.FirstLeaf(); first != nil {
			tree.FocusedPaneID = first.Pane.ID
		}
	}

	log.Info().
		Str("closed_pane_id", string(paneID)).
		Str("promoted_id", sibling.ID).
		Msg("pane closed, sibling promoted")

	if err := entity.CheckInvariants(tree); err != nil {
		return nil, err
	}
	return &ClosePaneOutput{
		Promoted: sibling,
		Focused:  tree.FocusedLeaf(),
	}, nil
}

// Navigate returns the leaf reached by moving from the given pane in
// direction, or nil when no axis-matching ancestor has room on the other
// side. Only the enclosing splits are consulted, not screen geometry.
func (uc *ManagePanesUseCase) Navigate(tree *entity.PaneTree, from entity.PaneID, direction NavigateDirection) (*entity.PaneNode, error) {
	if tree == nil || tree.IsEmpty() {
		return nil, fmt.Errorf("pane tree is required")
	}
	axis, ok := direction.axis()
	if !ok {
		return nil, fmt.Errorf("unknown direction %q", direction)
	}
	node := tree.FindPane(from)
	if node == nil {
		return nil, entity.StaleReference("navigate", from)
	}

	departs := direction.departsFrom()
	for current := node; current.Parent != nil; current = current.Parent {
		parent := current.Parent
		if parent.Orientation != axis {
			continue
		}
		side, _ := parent.SideOf(current)
		if side == departs {
			return parent.Child(departs.Opposite()).FirstLeaf(), nil
		}
	}
	return nil, nil
}

// NavigateFocus moves focus from the focused leaf in direction.
// Returns the newly focused leaf, or nil if navigation is not possible.
func (uc *ManagePanesUseCase) NavigateFocus(ctx context.Context, tree *entity.PaneTree, direction NavigateDirection) (*entity.PaneNode, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage panes use case is nil")
	}
	if tree == nil || tree.IsEmpty() {
		return nil, fmt.Errorf("pane tree is required")
	}

	active := tree.FocusedLeaf()
	if active == nil {
		log.Debug().Msg("no focused pane to navigate from")
		return nil, nil
	}

	target, err := uc.Navigate(tree, active.Pane.ID, direction)
	if err != nil {
		return nil, err
	}
	if target == nil {
		log.Debug().Str("direction", string(direction)).Msg("no adjacent pane found")
		return nil, nil
	}

	tree.FocusedPaneID = target.Pane.ID

	log.Debug().
		Str("from", string(active.Pane.ID)).
		Str("to", string(target.Pane.ID)).
		Str("direction", string(direction)).
		Msg("focus navigated")

	return target, nil
}

// Focus sets the focused pane of the tree.
func (uc *ManagePanesUseCase) Focus(ctx context.Context, tree *entity.PaneTree, paneID entity.PaneID) error {
	if tree == nil || !tree.Focus(paneID) {
		return entity.StaleReference("focus", paneID)
	}
	logging.FromContext(ctx).Debug().Str("pane_id", string(paneID)).Msg("pane focused")
	return nil
}
