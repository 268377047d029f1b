package events

import "github.com/atomicstack/emoji-picker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(info interface{}) {
	logging.Trace("app.start", info)
}

func (AppTracer) CatalogLoaded(source string, categories, entries int) {
	logging.Trace("app.catalog", map[string]interface{}{
		"source":     source,
		"categories": categories,
		"entries":    entries,
	})
}

func (AppTracer) Exit(selected bool, value string) {
	logging.Trace("app.exit", map[string]interface{}{"selected": selected, "value": value})
}
