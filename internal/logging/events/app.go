package events

import (
	"time"

	"github.com/atomicstack/unipick/internal/logging"
)

type AppTracer struct{}

type StoreTracer struct{}

var (
	App   = AppTracer{}
	Store = StoreTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) IndexReady(named, words int, elapsed time.Duration) {
	logging.Trace("app.index.ready", map[string]interface{}{
		"named":   named,
		"words":   words,
		"elapsed": elapsed.String(),
	})
}

func (StoreTracer) Loaded(path, mode string, recent int) {
	logging.Trace("store.loaded", map[string]interface{}{
		"path":   path,
		"mode":   mode,
		"recent": recent,
	})
}

func (StoreTracer) Flushed(path string) {
	logging.Trace("store.flushed", map[string]interface{}{"path": path})
}
