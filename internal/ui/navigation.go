package ui

import (
	"github.com/atomicstack/unipick/internal/logging/events"
	"github.com/atomicstack/unipick/internal/picker"
	"github.com/atomicstack/unipick/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		// Enter without a resolved character ends the session with no
		// selection, same as cancelling.
		m.confirmed = m.hasCurrent
		return tea.Quit
	case "f1":
		m.switchMode(picker.ModeHex)
		return nil
	case "f2":
		m.switchMode(picker.ModeName)
		return nil
	case "f3":
		m.switchMode(picker.ModeEmoticon)
		return nil
	}
	if m.mode == picker.ModeName {
		switch keyMsg.String() {
		case "tab", "right":
			m.moveSelection(0, 1)
			return nil
		case "shift+tab", "left":
			m.moveSelection(0, -1)
			return nil
		case "up":
			m.moveSelection(-1, 0)
			return nil
		case "down":
			m.moveSelection(1, 0)
			return nil
		}
	}
	return m.handleTextInput(keyMsg)
}

// switchMode changes the input mode, clearing the typed text and recording
// the new mode so the next session starts in it.
func (m *Model) switchMode(mode picker.Mode) {
	if mode == m.mode {
		return
	}
	events.Session.ModeSwitch(m.mode.String(), mode.String())
	m.mode = mode
	m.settings.Set(store.KeyMode, mode.String())
	m.input.SetValue("")
	m.refresh()
}

func (m *Model) moveSelection(rows, cols int) {
	m.table.MoveBy(rows, cols)
	if cp, ok := m.table.Current(); ok {
		events.Session.Cursor(cp)
	}
	m.updateCurrentChar()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.Session.Resize(m.width, m.height)
	return nil
}
