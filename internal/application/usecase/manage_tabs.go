package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// ManageTabsUseCase handles tab lifecycle operations.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
	spawner     port.SessionSpawner
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator, spawner port.SessionSpawner) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
		spawner:     spawner,
	}
}

// CreateTabOutput contains the result of tab creation.
type CreateTabOutput struct {
	Tab   *entity.Tab
	Index int
	// SpawnErr is set when the tab's first session failed to start.
	SpawnErr error
}

// Create appends a single-pane tab, spawns its session and activates it.
func (uc *ManageTabsUseCase) Create(ctx context.Context, tabs *entity.TabSet, spawn port.SpawnRequest) (*CreateTabOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage tabs use case is nil")
	}
	if tabs == nil {
		return nil, fmt.Errorf("tab set is required")
	}

	pane := entity.NewPane(entity.PaneID(uc.idGenerator()))
	spawn.PaneID = pane.ID
	spawnErr := startSession(ctx, uc.spawner, pane, spawn)

	tab := tabs.Append(entity.TabID(uc.idGenerator()), entity.NewPaneTree(pane))

	log.Info().
		Str("tab_id", string(tab.ID)).
		Str("pane_id", string(pane.ID)).
		Str("title", tab.Title).
		Int("index", tabs.Active).
		Msg("tab created")

	return &CreateTabOutput{Tab: tab, Index: tabs.Active, SpawnErr: spawnErr}, nil
}

// CloseTabOutput contains the result of closing a tab.
type CloseTabOutput struct {
	Closed *entity.Tab
	// Replacement is the default tab created because the closed tab was
	// the last one.
	Replacement *CreateTabOutput
}

// Close terminates every session of the tab at index and removes it.
// Closing the last tab creates a fresh default tab so the set is never
// left empty.
func (uc *ManageTabsUseCase) Close(ctx context.Context, tabs *entity.TabSet, index int, spawn port.SpawnRequest) (*CloseTabOutput, error) {
	log := logging.FromContext(ctx)
	if uc == nil {
		return nil, fmt.Errorf("manage tabs use case is nil")
	}
	if tabs == nil {
		return nil, fmt.Errorf("tab set is required")
	}

	tab, ok := tabs.Remove(index)
	if !ok {
		return nil, fmt.Errorf("tab index %d out of range [0,%d)", index, tabs.Count())
	}
	ctx = logging.WithTabID(ctx, string(tab.ID))
	log = logging.FromContext(ctx)

	if tab.Tree != nil {
		for _, pane := range tab.Tree.Panes() {
			if err := pane.Destroy(); err != nil {
				log.Warn().Err(err).Str("pane_id", string(pane.ID)).Msg("session termination failed")
			}
		}
		tab.Tree.Root = nil
		tab.Tree.FocusedPaneID = ""
	}

	out := &CloseTabOutput{Closed: tab}
	if tabs.IsEmpty() {
		log.Info().Msg("closed last tab, creating a default one")
		replacement, err := uc.Create(ctx, tabs, spawn)
		if err != nil {
			return nil, err
		}
		out.Replacement = replacement
	}

	log.Info().
		Int("index", index).
		Int("remaining", tabs.Count()).
		Int("active", tabs.Active).
		Msg("tab closed")

	return out, nil
}

// Switch activates the tab at index and refocuses its remembered leaf,
// falling back to its first leaf. Out-of-range indexes are a no-op and
// return false.
func (uc *ManageTabsUseCase) Switch(ctx context.Context, tabs *entity.TabSet, index int) bool {
	log := logging.FromContext(ctx)
	if tabs == nil || !tabs.SetActive(index) {
		log.Debug().Int("index", index).Msg("invalid tab index")
		return false
	}

	tree := tabs.ActiveTab().Tree
	if tree.FocusedLeaf() == nil {
		if first := tree.FirstLeaf(); first != nil {
			tree.FocusedPaneID = first.Pane.ID
		}
	}

	log.Debug().
		Int("index", index).
		Str("focused_pane_id", string(tree.FocusedPaneID)).
		Msg("switched tab")
	return true
}

// GetNext returns the index of the tab direction steps away from the
// active one, wrapping around.
func (uc *ManageTabsUseCase) GetNext(tabs *entity.TabSet, direction int) int {
	n := tabs.Count()
	if n == 0 {
		return -1
	}
	return ((tabs.Active+direction)%n + n) % n
}

// SwitchNext activates the next tab, wrapping to the first.
func (uc *ManageTabsUseCase) SwitchNext(ctx context.Context, tabs *entity.TabSet) bool {
	return uc.Switch(ctx, tabs, uc.GetNext(tabs, 1))
}

// SwitchPrevious activates the previous tab, wrapping to the last.
func (uc *ManageTabsUseCase) SwitchPrevious(ctx context.Context, tabs *entity.TabSet) bool {
	return uc.Switch(ctx, tabs, uc.GetNext(tabs, -1))
}

// Rename replaces the title of the tab at index verbatim. Titles that are
// blank after trimming are ignored.
func (uc *ManageTabsUseCase) Rename(ctx context.Context, tabs *entity.TabSet, index int, title string) bool {
	log := logging.FromContext(ctx)
	if tabs == nil || !tabs.Rename(index, title) {
		log.Debug().Int("index", index).Msg("rename ignored")
		return false
	}

	log.Info().
		Int("index", index).
		Str("title", title).
		Msg("tab renamed")
	return true
}
