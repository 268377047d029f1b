package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/clipboard"
	"github.com/atomicstack/emoji-picker/internal/logging/events"
	"github.com/atomicstack/emoji-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath   string
	CatalogFormat catalog.Format
	Category      string
	Clipboard     string
	ClipboardCmd  []string
	IgnoreCase    bool
	BestMatch     bool
	Width         int
	Height        int
	ShowFooter    bool

	// UIOutput receives the rendered picker. Nil renders on stdout.
	UIOutput io.Writer
}

// Run loads the catalog, runs the picker, and reports how the session ended.
// A failed load returns before any terminal setup. Output from the print
// clipboard backend is written to stdout once the alternate screen is gone.
func Run(cfg Config) (ui.Outcome, error) {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return ui.Outcome{}, err
	}
	var printed bytes.Buffer
	sink, err := clipboard.New(cfg.Clipboard, cfg.ClipboardCmd, &printed)
	if err != nil {
		return ui.Outcome{}, fmt.Errorf("clipboard: %w", err)
	}
	model := NewModel(cfg, cat, sink)
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if cfg.UIOutput != nil {
		opts = append(opts, tea.WithOutput(cfg.UIOutput))
	}
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return ui.Outcome{}, err
	}
	outcome := model.Outcome()
	if m, ok := final.(*ui.Model); ok {
		outcome = m.Outcome()
	}
	if printed.Len() > 0 {
		if _, werr := io.Copy(os.Stdout, &printed); werr != nil && outcome.Err == nil {
			outcome.Err = &clipboard.Error{Backend: clipboard.BackendPrint, Err: werr}
		}
	}
	events.App.Exit(outcome.Selected, outcome.Entry.Value)
	return outcome, nil
}

// LoadCatalog reads the configured catalog, or the built-in one when no path
// is set.
func LoadCatalog(cfg Config) (*catalog.Catalog, error) {
	var (
		cat    *catalog.Catalog
		err    error
		source = cfg.CatalogPath
	)
	if source == "" {
		source = "built-in"
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(cfg.CatalogPath, cfg.CatalogFormat)
	}
	if err != nil {
		return nil, err
	}
	events.App.CatalogLoaded(source, len(cat.Names()), cat.Len())
	return cat, nil
}

// NewModel builds the picker model for cfg.
func NewModel(cfg Config, cat *catalog.Catalog, sink clipboard.Sink) *ui.Model {
	match := catalog.Filter
	if cfg.IgnoreCase {
		match = catalog.FilterFold
	}
	return ui.NewModel(cat, ui.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		ShowFooter:      cfg.ShowFooter,
		InitialCategory: cfg.Category,
		Match:           match,
		JumpToBestMatch: cfg.BestMatch,
		Sink:            sink,
	})
}
