package entity

import (
	"fmt"
	"strings"
)

// TabID uniquely identifies a tab.
type TabID string

// DefaultTabTitleTemplate prefixes generated tab titles.
const DefaultTabTitleTemplate = "Terminal"

// Tab is one entry of the tab bar, owning a pane tree.
type Tab struct {
	ID        TabID
	Title     string
	Tree      *PaneTree
	CreatedAt uint64 // value of the tab counter at creation, never reused
}

// PaneCount returns the number of panes in this tab's tree.
func (t *Tab) PaneCount() int {
	if t.Tree == nil {
		return 0
	}
	return t.Tree.PaneCount()
}

// TabSet manages an ordered collection of tabs and the active index.
// Active is always in [0, len(Tabs)) while the set is non-empty.
type TabSet struct {
	Tabs          []*Tab
	Active        int
	TitleTemplate string

	counter uint64
}

// NewTabSet creates an empty tab set whose generated titles use template.
func NewTabSet(template string) *TabSet {
	if strings.TrimSpace(template) == "" {
		template = DefaultTabTitleTemplate
	}
	return &TabSet{
		Tabs:          make([]*Tab, 0),
		TitleTemplate: template,
		counter:       1,
	}
}

// Count returns the number of tabs.
func (s *TabSet) Count() int {
	return len(s.Tabs)
}

// IsEmpty reports whether the set has no tabs.
func (s *TabSet) IsEmpty() bool {
	return len(s.Tabs) == 0
}

// InBounds reports whether index addresses an existing tab.
func (s *TabSet) InBounds(index int) bool {
	return index >= 0 && index < len(s.Tabs)
}

// Append adds a tab owning tree at the end, titles it from the template
// and the counter, and makes it active. Returns the new tab.
func (s *TabSet) Append(id TabID, tree *PaneTree) *Tab {
	seq := s.counter
	s.counter++

	tab := &Tab{
		ID:        id,
		Title:     fmt.Sprintf("%s %d", s.TitleTemplate, seq),
		Tree:      tree,
		CreatedAt: seq,
	}
	s.Tabs = append(s.Tabs, tab)
	s.Active = len(s.Tabs) - 1
	return tab
}

// Remove removes the tab at index. When the active tab is removed, the
// tab now at the same position (or the last one) becomes active.
func (s *TabSet) Remove(index int) (*Tab, bool) {
	if !s.InBounds(index) {
		return nil, false
	}
	tab := s.Tabs[index]
	s.Tabs = append(s.Tabs[:index], s.Tabs[index+1:]...)

	switch {
	case len(s.Tabs) == 0:
		s.Active = 0
	case index < s.Active:
		s.Active--
	case s.Active >= len(s.Tabs):
		s.Active = len(s.Tabs) - 1
	}
	return tab, true
}

// SetActive changes the active index. Out-of-range indexes are ignored.
func (s *TabSet) SetActive(index int) bool {
	if !s.InBounds(index) {
		return false
	}
	s.Active = index
	return true
}

// ActiveTab returns the active tab, nil when the set is empty.
func (s *TabSet) ActiveTab() *Tab {
	if !s.InBounds(s.Active) {
		return nil
	}
	return s.Tabs[s.Active]
}

// At returns the tab at index or nil.
func (s *TabSet) At(index int) *Tab {
	if !s.InBounds(index) {
		return nil
	}
	return s.Tabs[index]
}

// IndexOf returns the index of the tab with the given ID, or -1.
func (s *TabSet) IndexOf(id TabID) int {
	for i, tab := range s.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// FindPane returns the index of the tab holding the pane and its leaf.
func (s *TabSet) FindPane(id PaneID) (int, *PaneNode) {
	for i, tab := range s.Tabs {
		if leaf := tab.Tree.FindPane(id); leaf != nil {
			return i, leaf
		}
	}
	return -1, nil
}

// FindSession returns the index of the tab and the leaf whose pane owns
// the session with the given ID.
func (s *TabSet) FindSession(sessionID string) (int, *PaneNode) {
	for i, tab := range s.Tabs {
		for _, leaf := range tab.Tree.Leaves() {
			if leaf.Pane.Session != nil && leaf.Pane.Session.ID() == sessionID {
				return i, leaf
			}
		}
	}
	return -1, nil
}

// Rename sets the title of the tab at index. Blank titles are ignored.
func (s *TabSet) Rename(index int, title string) bool {
	if !s.InBounds(index) || strings.TrimSpace(title) == "" {
		return false
	}
	s.Tabs[index].Title = title
	return true
}
