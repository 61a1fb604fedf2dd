//go:build tesseradebug

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
)

func TestManagePanes_StaleHandlesPanicInDebugBuilds(t *testing.T) {
	ctx := context.Background()
	uc, tree := threeColumns(t)
	detached := entity.NewLeaf(entity.NewPane("X"))

	other := entity.NewPaneTree(entity.NewPane("F"))
	foreign := other.Root

	assert.Panics(t, func() {
		_, _ = uc.SplitLeaf(ctx, tree, detached, entity.OrientationHorizontal, 0, entity.NewPane("Y"))
	}, "detached leaf")
	assert.Panics(t, func() {
		_, _ = uc.SplitLeaf(ctx, tree, foreign, entity.OrientationVertical, 0, entity.NewPane("Y"))
	}, "leaf of another tree")
	assert.Panics(t, func() { _, _ = uc.Close(ctx, tree, "X") })
	assert.Panics(t, func() { _, _ = uc.Navigate(tree, "F", usecase.NavRight) })

	assert.Equal(t, "H(A,H(B,C))", shape(tree.Root), "nothing was mutated before the panic")
}

func TestCheckInvariants_PanicsInDebugBuilds(t *testing.T) {
	tree := entity.NewPaneTree(entity.NewPane("A"))
	tree.Root.Parent = entity.NewLeaf(entity.NewPane("B"))

	assert.Panics(t, func() { _ = entity.CheckInvariants(tree) })
}
