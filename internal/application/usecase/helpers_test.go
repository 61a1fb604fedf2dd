package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/port/mocks"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// sequentialIDs returns a generator yielding id-1, id-2, ...
func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newSessionSpawner returns a spawner mock handing out session mocks that
// accept any number of ID/Terminate/Apply calls. Spawned sessions are
// recorded by pane ID.
func newSessionSpawner(t testingT) (*mocks.MockSessionSpawner, map[entity.PaneID]*mocks.MockTerminalSession) {
	spawned := make(map[entity.PaneID]*mocks.MockTerminalSession)
	spawner := mocks.NewMockSessionSpawner(t)
	spawner.EXPECT().
		Spawn(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req port.SpawnRequest) (port.TerminalSession, error) {
			session := newSession(t, "sess-"+string(req.PaneID))
			spawned[req.PaneID] = session
			return session, nil
		}).
		Maybe()
	return spawner, spawned
}

func newSession(t testingT, id string) *mocks.MockTerminalSession {
	session := mocks.NewMockTerminalSession(t)
	session.EXPECT().ID().Return(id).Maybe()
	session.EXPECT().Terminate().Return(nil).Maybe()
	session.EXPECT().Apply(mock.Anything).Return(nil).Maybe()
	return session
}

// shape renders a subtree as e.g. H(A,V(B,C)) for structural assertions.
func shape(n *entity.PaneNode) string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return string(n.Pane.ID)
	}
	o := "H"
	if n.Orientation == entity.OrientationVertical {
		o = "V"
	}
	return fmt.Sprintf("%s(%s,%s)", o, shape(n.Start), shape(n.End))
}

func leafIDs(tree *entity.PaneTree) string {
	var ids []string
	for _, leaf := range tree.Leaves() {
		ids = append(ids, string(leaf.Pane.ID))
	}
	return strings.Join(ids, ",")
}

// assertStale checks that op rejects a pane handle not linked into its
// tree: an ErrStaleLeaf error, or a panic in tesseradebug builds.
func assertStale(t *testing.T, op func() error) {
	t.Helper()
	if entity.StrictInvariants {
		assert.Panics(t, func() { _ = op() })
		return
	}
	assert.ErrorIs(t, op(), entity.ErrStaleLeaf)
}
