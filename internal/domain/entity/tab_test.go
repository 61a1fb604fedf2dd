package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSet(n int) *TabSet {
	s := NewTabSet("Terminal")
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		s.Append(TabID(id), NewPaneTree(NewPane(PaneID("p-"+id))))
	}
	return s
}

func TestTabSet_AppendTitlesAndActivates(t *testing.T) {
	s := newSet(2)

	require.Equal(t, 2, s.Count())
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, "Terminal 1", s.Tabs[0].Title)
	assert.Equal(t, "Terminal 2", s.Tabs[1].Title)
	assert.Equal(t, uint64(2), s.Tabs[1].CreatedAt)
}

func TestTabSet_CounterNeverReused(t *testing.T) {
	s := newSet(3)
	_, ok := s.Remove(2)
	require.True(t, ok)

	tab := s.Append("d", NewPaneTree(NewPane("p-d")))

	assert.Equal(t, "Terminal 4", tab.Title)
	assert.Equal(t, uint64(4), tab.CreatedAt)
}

func TestTabSet_BlankTemplateFallsBack(t *testing.T) {
	s := NewTabSet("  ")
	tab := s.Append("a", NewPaneTree(NewPane("p")))
	assert.Equal(t, "Terminal 1", tab.Title)
}

func TestTabSet_Remove(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		active     int
		remove     int
		wantActive int
		wantIDs    []TabID
	}{
		{"active middle moves to next", 3, 1, 1, 1, []TabID{"a", "c"}},
		{"active last moves to previous", 3, 2, 2, 1, []TabID{"a", "b"}},
		{"before active shifts active", 3, 2, 0, 1, []TabID{"b", "c"}},
		{"after active keeps active", 3, 0, 2, 0, []TabID{"a", "b"}},
		{"only tab", 1, 0, 0, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSet(tt.count)
			s.Active = tt.active

			_, ok := s.Remove(tt.remove)
			require.True(t, ok)

			assert.Equal(t, tt.wantActive, s.Active)
			var ids []TabID
			for _, tab := range s.Tabs {
				ids = append(ids, tab.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTabSet_RemoveOutOfRange(t *testing.T) {
	s := newSet(1)
	_, ok := s.Remove(3)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Count())
}

func TestTabSet_SetActiveOutOfRangeIsNoop(t *testing.T) {
	s := newSet(3)
	s.Active = 1

	for _, i := range []int{-1, 3, 99} {
		assert.False(t, s.SetActive(i))
		assert.Equal(t, 1, s.Active)
	}
	assert.True(t, s.SetActive(0))
	assert.Equal(t, 0, s.Active)
}

func TestTabSet_Rename(t *testing.T) {
	s := newSet(1)

	assert.False(t, s.Rename(0, "  "))
	assert.Equal(t, "Terminal 1", s.Tabs[0].Title)

	assert.True(t, s.Rename(0, "  build logs "))
	assert.Equal(t, "  build logs ", s.Tabs[0].Title)

	assert.False(t, s.Rename(5, "x"))
}

func TestTabSet_FindPaneAndSession(t *testing.T) {
	s := newSet(2)
	session := &fakeSession{id: "sess-b"}
	s.Tabs[1].Tree.Root.Pane.Attach(session)

	idx, node := s.FindPane("p-b")
	assert.Equal(t, 1, idx)
	require.NotNil(t, node)

	idx, node = s.FindSession("sess-b")
	assert.Equal(t, 1, idx)
	assert.Equal(t, PaneID("p-b"), node.Pane.ID)

	idx, node = s.FindSession("nope")
	assert.Equal(t, -1, idx)
	assert.Nil(t, node)
}
