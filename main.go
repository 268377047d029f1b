package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/emoji-picker/internal/app"
	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/clipboard"
	"github.com/atomicstack/emoji-picker/internal/config"
	"github.com/atomicstack/emoji-picker/internal/logging"
	"github.com/atomicstack/emoji-picker/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	info := describeStartup(runtimeCfg, detectTerminals)
	events.App.Start(info)
	if info.Render == "stderr" {
		runtimeCfg.App.UIOutput = os.Stderr
	}

	outcome, err := app.Run(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if outcome.Err != nil {
		logging.Error(outcome.Err)
		fmt.Fprintf(os.Stderr, "Could not copy %s: %v\n", outcome.Entry.Value, outcome.Err)
	}
}

// startupInfo is traced once before the picker opens.
type startupInfo struct {
	Catalog      string         `json:"catalog"`
	Format       string         `json:"format"`
	Category     string         `json:"category,omitempty"`
	Clipboard    string         `json:"clipboard"`
	ClipboardCmd []string       `json:"clipboard_cmd,omitempty"`
	IgnoreCase   bool           `json:"ignore_case"`
	BestMatch    bool           `json:"best_match"`
	Viewport     viewport       `json:"viewport"`
	Render       string         `json:"render"`
	Terminals    []terminalInfo `json:"terminals"`
	Args         []string       `json:"argv"`
	LogFile      string         `json:"log_file"`
}

type viewport struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Source string `json:"source"`
}

type terminalInfo struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

type terminalDetector func() []terminalInfo

// describeStartup resolves what the picker is about to do from cfg and the
// attached descriptors.
func describeStartup(cfg config.Config, detect terminalDetector) startupInfo {
	a := cfg.App
	info := startupInfo{
		Catalog:    a.CatalogPath,
		Format:     string(a.CatalogFormat),
		Category:   a.Category,
		Clipboard:  a.Clipboard,
		IgnoreCase: a.IgnoreCase,
		BestMatch:  a.BestMatch,
		Terminals:  detect(),
		Args:       cfg.Args,
		LogFile:    logging.Path(),
	}
	if info.Catalog == "" {
		info.Catalog = "built-in"
	}
	if a.CatalogFormat == catalog.FormatAuto {
		info.Format = "auto"
		if a.CatalogPath != "" {
			info.Format = string(catalog.FormatForPath(a.CatalogPath))
		}
	}
	if info.Clipboard == "" {
		info.Clipboard = clipboard.BackendAuto
	}
	if info.Clipboard != clipboard.BackendSystem && info.Clipboard != clipboard.BackendPrint {
		info.ClipboardCmd = a.ClipboardCmd
	}
	info.Render = renderTarget(info.Terminals)
	info.Viewport = resolveViewport(a.Width, a.Height, info.Terminals, info.Render)
	return info
}

// renderTarget keeps stdout free for the print backend when it is piped but
// stderr still reaches the terminal.
func renderTarget(terms []terminalInfo) string {
	out, errOut := terminalNamed(terms, "stdout"), terminalNamed(terms, "stderr")
	if !out.Terminal && errOut.Terminal {
		return "stderr"
	}
	return "stdout"
}

func resolveViewport(width, height int, terms []terminalInfo, render string) viewport {
	if width > 0 && height > 0 {
		return viewport{Width: width, Height: height, Source: "flags"}
	}
	t := terminalNamed(terms, render)
	if !t.Terminal {
		return viewport{Width: width, Height: height, Source: "unknown"}
	}
	v := viewport{Width: t.Width, Height: t.Height, Source: render}
	if width > 0 {
		v.Width = width
	}
	if height > 0 {
		v.Height = height
	}
	return v
}

func terminalNamed(terms []terminalInfo, name string) terminalInfo {
	for _, t := range terms {
		if t.Name == name {
			return t
		}
	}
	return terminalInfo{Name: name}
}

func detectTerminals() []terminalInfo {
	fds := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	out := make([]terminalInfo, 0, len(fds))
	for _, fd := range fds {
		info := terminalInfo{Name: fd.name}
		if n := int(fd.file.Fd()); term.IsTerminal(n) {
			info.Terminal = true
			if w, h, err := term.GetSize(n); err == nil {
				info.Width, info.Height = w, h
			}
		}
		out = append(out, info)
	}
	return out
}
