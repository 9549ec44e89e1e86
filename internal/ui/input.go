package ui

import (
	"strconv"
	"unicode/utf8"

	"github.com/atomicstack/unipick/internal/logging/events"
	"github.com/atomicstack/unipick/internal/picker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// recentHintPrefix introduces a hint into the recent list while in hex mode,
// so "r3" picks the fourth recent character instead of parsing as hex.
const recentHintPrefix = 'r'

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	return ti
}

// handleTextInput forwards a key to the text input and recomputes the
// session state from the new value.
func (m *Model) handleTextInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return cmd
}

// updateCurrentChar reinterprets the typed text (or the table selection in
// name mode) as the resolved character, then applies the exclusion rules.
func (m *Model) updateCurrentChar() {
	m.current = 0
	m.hasCurrent = false

	switch m.mode {
	case picker.ModeHex:
		text := m.input.Value()
		switch {
		case len(text) > 1 && text[0] == recentHintPrefix:
			m.lookupHint(text[1:])
		case text != "":
			if value, err := strconv.ParseUint(text, 16, 32); err == nil && value <= utf8.MaxRune {
				m.current = rune(value)
				m.hasCurrent = true
			}
		}
	case picker.ModeName:
		if cp, ok := m.table.Current(); ok {
			m.current = cp
			m.hasCurrent = true
		}
	case picker.ModeEmoticon:
		if text := m.input.Value(); text != "" {
			m.lookupHint(text)
		}
	}

	if m.hasCurrent && picker.Excluded(m.current) {
		if m.current != m.lastExcluded {
			m.lastExcluded = m.current
			events.Input.Excluded(m.current)
		}
		m.current = 0
		m.hasCurrent = false
	}
	if m.hasCurrent {
		m.lastExcluded = 0
	}
}

// lookupHint resolves a typed hint label against the table. Malformed and
// out-of-range labels leave the resolved character absent; they are expected
// while the user is still typing.
func (m *Model) lookupHint(label string) {
	cp, err := m.table.CodepointAtHint(label)
	if err != nil {
		if label != m.lastRejectedHint {
			m.lastRejectedHint = label
			events.Input.HintRejected(label, err)
		}
		return
	}
	m.lastRejectedHint = ""
	m.current = cp
	m.hasCurrent = true
}
