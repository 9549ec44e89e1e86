package events

import (
	"fmt"

	"github.com/atomicstack/unipick/internal/logging"
)

type SessionTracer struct{}

type SearchTracer struct{}

type InputTracer struct{}

var (
	Session = SessionTracer{}
	Search  = SearchTracer{}
	Input   = InputTracer{}
)

func codepoint(cp rune) string {
	return fmt.Sprintf("U+%04X", cp)
}

func (SessionTracer) ModeSwitch(from, to string) {
	logging.Trace("session.mode", map[string]interface{}{"from": from, "to": to})
}

func (SessionTracer) Resize(width, height int) {
	logging.Trace("session.resize", map[string]interface{}{"width": width, "height": height})
}

func (SessionTracer) Cursor(cp rune) {
	logging.Trace("session.cursor", map[string]interface{}{"codepoint": codepoint(cp)})
}

func (SessionTracer) Confirm(cp rune) {
	logging.Trace("session.confirm", map[string]interface{}{
		"codepoint": codepoint(cp),
		"char":      string(cp),
	})
}

func (SessionTracer) Cancel() {
	logging.Trace("session.cancel", nil)
}

func (SearchTracer) Query(query string, matches int) {
	logging.Trace("search.query", map[string]interface{}{"query": query, "matches": matches})
}

func (SearchTracer) Suggest(query, suggestion string) {
	logging.Trace("search.suggest", map[string]interface{}{"query": query, "suggestion": suggestion})
}

func (InputTracer) HintRejected(label string, err error) {
	if err == nil {
		return
	}
	logging.Trace("input.hint.rejected", map[string]interface{}{
		"label": label,
		"error": err.Error(),
	})
}

func (InputTracer) Excluded(cp rune) {
	logging.Trace("input.excluded", map[string]interface{}{"codepoint": codepoint(cp)})
}
