package events

import "github.com/atomicstack/emoji-picker/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CategoryTracer struct{}

type SelectionTracer struct{}

var (
	UI        = UITracer{}
	Filter    = FilterTracer{}
	Category  = CategoryTracer{}
	Selection = SelectionTracer{}
)

func (UITracer) Phase(from, to string) {
	logging.Trace("ui.phase", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Focus(area string) {
	logging.Trace("ui.focus", map[string]interface{}{"area": area})
}

func (UITracer) Cursor(area string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"area": area, "cursor": cursor})
}

// Abandon records a quit while a copy was still running.
func (UITracer) Abandon() {
	logging.Trace("ui.abandon", nil)
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) WordBackspace(filter string, matches int) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Backspace(filter string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter, "matches": matches})
}

func (CategoryTracer) Browse(name string, visible int) {
	logging.Trace("category.browse", map[string]interface{}{"category": name, "visible": visible})
}

func (CategoryTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("category.error", map[string]interface{}{"category": name, "error": err.Error()})
}

func (SelectionTracer) Commit(key, value string) {
	logging.Trace("selection.commit", map[string]interface{}{"key": key, "value": value})
}

func (SelectionTracer) Copied(value string) {
	logging.Trace("selection.copied", map[string]interface{}{"value": value})
}

func (SelectionTracer) Error(value string, err error) {
	if err == nil {
		return
	}
	logging.Trace("selection.error", map[string]interface{}{"value": value, "error": err.Error()})
}
