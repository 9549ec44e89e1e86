package ui

import (
	"reflect"
	"strings"

	"github.com/atomicstack/unipick/internal/logging/events"
	"github.com/atomicstack/unipick/internal/names"
	"github.com/atomicstack/unipick/internal/picker"
	"github.com/atomicstack/unipick/internal/search"
	"github.com/atomicstack/unipick/internal/theme"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Settings is the slice of the settings store the session writes to. Writes
// stay in memory; the caller persists them after the session ends.
type Settings interface {
	Get(key, fallback string) string
	Set(key, value string)
}

// computeKey identifies one candidate computation. A key that matches the
// previous one means the table already holds the right candidates and no
// recomputation happens.
type computeKey struct {
	mode  picker.Mode
	query string
	valid bool
}

// Model implements the Bubble Tea model for the character picker.
type Model struct {
	mode      picker.Mode
	input     textinput.Model
	table     *picker.Table
	names     *names.Index
	resolver  *search.Resolver
	settings  Settings
	recent    *picker.History
	emoticons []rune

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	current          rune
	hasCurrent       bool
	confirmed        bool
	suggestion       string
	lastComputed     computeKey
	lastRejectedHint string
	lastExcluded     rune

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the picker session in the given mode.
func NewModel(index *names.Index, resolver *search.Resolver, settings Settings, recent *picker.History, mode picker.Mode, width, height int) *Model {
	m := &Model{
		mode:      mode,
		input:     newSearchInput(),
		table:     picker.NewTable(index.NameOf, styles),
		names:     index,
		resolver:  resolver,
		settings:  settings,
		recent:    recent,
		emoticons: picker.EmoticonRange(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	m.refresh()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("unipick"))
}

// Update responds to Bubble Tea messages. Key and resize messages go through
// the handler registry; everything else (cursor blinking, mostly) is handed
// to the text input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// refresh recomputes the candidate table and the resolved character after
// any state change. Candidate recomputation is keyed on (mode, query) so
// selection moves and redraws reuse the existing table.
func (m *Model) refresh() {
	m.updateCandidates()
	m.updateCurrentChar()
}

func (m *Model) updateCandidates() {
	key := computeKey{mode: m.mode, valid: true}
	if m.mode == picker.ModeName {
		key.query = m.input.Value()
	}
	if key == m.lastComputed {
		return
	}
	m.lastComputed = key
	m.suggestion = ""

	var candidates []rune
	switch m.mode {
	case picker.ModeHex:
		candidates = m.recent.List()
	case picker.ModeEmoticon:
		candidates = m.emoticons
	case picker.ModeName:
		candidates = m.resolver.Resolve(key.query)
		if len(candidates) == 0 && strings.TrimSpace(key.query) != "" {
			m.suggestion = m.resolver.Suggest(key.query)
			if m.suggestion != "" {
				events.Search.Suggest(key.query, m.suggestion)
			}
		}
		events.Search.Query(key.query, len(candidates))
	}
	m.table.SetCandidates(candidates, m.mode)
}

// Result returns the confirmed character, if the session ended with one.
func (m *Model) Result() (rune, bool) {
	if m.confirmed && m.hasCurrent {
		return m.current, true
	}
	return 0, false
}
