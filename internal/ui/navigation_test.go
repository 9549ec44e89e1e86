package ui

import (
	"testing"

	"github.com/atomicstack/unipick/internal/names"
	"github.com/atomicstack/unipick/internal/picker"
	"github.com/atomicstack/unipick/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNameSearchNarrowsAndNavigates(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Send(tea.KeyMsg{Type: tea.KeyF2})
	h.SendKeys("grinning")

	m := h.Model()
	if got := m.table.Len(); got != 2 {
		t.Fatalf("candidate count = %d, want 2", got)
	}
	if !m.hasCurrent || m.current != 0x1F600 {
		t.Fatalf("initial selection = %q, %v; want U+1F600", m.current, m.hasCurrent)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.current != 0x1F638 {
		t.Fatalf("selection after tab = %q, want U+1F638", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	if m.current != 0x1F600 {
		t.Fatalf("selection after wrap = %q, want U+1F600", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.current != 0x1F638 {
		t.Fatalf("selection after shift+tab = %q, want U+1F638", m.current)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	cp, ok := m.Result()
	if !ok || cp != 0x1F638 {
		t.Fatalf("Result() = %q, %v; want U+1F638", cp, ok)
	}
}

func TestNameRowNavigation(t *testing.T) {
	idx := names.NewIndex(names.StaticSource(map[rune]string{
		'A': "ITEM AA",
		'B': "ITEM BB",
		'C': "ITEM CC",
		'D': "ITEM DD",
		'E': "ITEM EE",
		'F': "ITEM FF",
	}))
	m := NewModel(idx, search.NewResolver(idx), newFakeSettings(), picker.NewHistory(nil, 1), picker.ModeName, 30, 24)
	h := NewHarness(m)
	h.SendKeys("item")
	if got := m.table.Len(); got != 6 {
		t.Fatalf("candidate count = %d, want 6", got)
	}

	// Cells are 14 columns wide here, so a 30 column window holds two per
	// row. Rendering fixes the column count used by row movement.
	h.View()

	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.current != 'C' {
		t.Fatalf("selection after down = %q, want C", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.current != 'E' {
		t.Fatalf("selection after second down = %q, want E", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.current != 'F' {
		t.Fatalf("down past the last row clamped to %q, want F", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if m.current != 'D' {
		t.Fatalf("selection after up = %q, want D", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	if m.current != 'E' {
		t.Fatalf("selection after right = %q, want E", m.current)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	if m.current != 'D' {
		t.Fatalf("selection after left = %q, want D", m.current)
	}
}

type countingIndex struct {
	*names.Index
	lookups int
}

func (c *countingIndex) Lookup(word string) []rune {
	c.lookups++
	return c.Index.Lookup(word)
}

func TestNavigationDoesNotRerunSearch(t *testing.T) {
	counting := &countingIndex{Index: testIndex()}
	m := NewModel(counting.Index, search.NewResolver(counting), newFakeSettings(), picker.NewHistory(testRecent, 10), picker.ModeName, 0, 0)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.SendKeys("grinning")
	if counting.lookups == 0 {
		t.Fatalf("search never hit the index")
	}

	before := counting.lookups
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 20})
	h.View()
	if counting.lookups != before {
		t.Fatalf("lookups went from %d to %d during navigation", before, counting.lookups)
	}
}

func TestNameSelectionExcludesControlCharacters(t *testing.T) {
	h, _ := newTestHarness(t)
	h.Send(tea.KeyMsg{Type: tea.KeyF2})
	h.SendKeys("space")
	m := h.Model()
	if got := m.table.Len(); got != 1 {
		t.Fatalf("candidate count = %d, want 1", got)
	}
	if m.hasCurrent {
		t.Fatalf("control character resolved to %q", m.current)
	}
}
