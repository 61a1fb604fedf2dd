// Package focus maps screen positions to panes.
package focus

import (
	"context"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// Manager resolves pointer positions against a tab's layout.
type Manager struct {
	panesUC *usecase.ManagePanesUseCase
}

// NewManager creates a focus manager.
func NewManager(panesUC *usecase.ManagePanesUseCase) *Manager {
	return &Manager{panesUC: panesUC}
}

// PaneAt returns the pane whose region contains the cell (x, y).
func PaneAt(regions []entity.Region, x, y int) (entity.PaneID, bool) {
	for _, r := range regions {
		rect := r.Rect
		if x >= rect.X && x < rect.X+rect.W && y >= rect.Y && y < rect.Y+rect.H {
			return rect.PaneID, true
		}
	}
	return "", false
}

// FocusAt focuses the pane drawn at (x, y) when tree is laid out over a
// width x height area. It reports whether focus changed.
func (m *Manager) FocusAt(ctx context.Context, tree *entity.PaneTree, width, height, x, y int) (bool, error) {
	log := logging.FromContext(ctx)

	if tree == nil || tree.IsEmpty() {
		return false, nil
	}
	id, ok := PaneAt(tree.Regions(width, height), x, y)
	if !ok {
		return false, nil
	}
	if focused := tree.FocusedLeaf(); focused != nil && focused.Pane.ID == id {
		return false, nil
	}
	if err := m.panesUC.Focus(ctx, tree, id); err != nil {
		return false, err
	}

	log.Debug().Str("pane_id", string(id)).Int("x", x).Int("y", y).Msg("focus moved by pointer")
	return true, nil
}
