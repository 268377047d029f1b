package main

import (
	"reflect"
	"testing"

	"github.com/atomicstack/emoji-picker/internal/app"
	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/config"
)

func fakeTerminals(stdout, stderr bool) terminalDetector {
	return func() []terminalInfo {
		return []terminalInfo{
			{Name: "stdin", Terminal: true, Width: 100, Height: 40},
			{Name: "stdout", Terminal: stdout, Width: 100, Height: 40},
			{Name: "stderr", Terminal: stderr, Width: 90, Height: 30},
		}
	}
}

func TestDetectTerminalsCoversStandardDescriptors(t *testing.T) {
	got := detectTerminals()
	names := make([]string, len(got))
	for i, info := range got {
		names[i] = info.Name
	}
	if !reflect.DeepEqual(names, []string{"stdin", "stdout", "stderr"}) {
		t.Fatalf("expected stdin/stdout/stderr entries, got %v", names)
	}
}

func TestDescribeStartupDefaults(t *testing.T) {
	cfg, err := config.LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("expected defaults, got %v", err)
	}
	info := describeStartup(cfg, fakeTerminals(true, true))
	if info.Catalog != "built-in" || info.Format != "auto" {
		t.Fatalf("expected built-in catalog with auto format, got %q/%q", info.Catalog, info.Format)
	}
	if info.Clipboard != "auto" {
		t.Fatalf("expected auto clipboard, got %q", info.Clipboard)
	}
	if want := []string{"xclip", "-selection", "clipboard"}; !reflect.DeepEqual(info.ClipboardCmd, want) {
		t.Fatalf("expected fallback command %v, got %v", want, info.ClipboardCmd)
	}
	if info.Render != "stdout" {
		t.Fatalf("expected rendering on stdout, got %q", info.Render)
	}
	if want := (viewport{Width: 100, Height: 40, Source: "stdout"}); info.Viewport != want {
		t.Fatalf("expected %#v, got %#v", want, info.Viewport)
	}
}

func TestDescribeStartupResolvesCatalogFormat(t *testing.T) {
	cfg := config.Config{App: app.Config{CatalogPath: "emoji.yml", Clipboard: "print", ClipboardCmd: []string{"wl-copy"}}}
	info := describeStartup(cfg, fakeTerminals(true, true))
	if info.Catalog != "emoji.yml" || info.Format != "yaml" {
		t.Fatalf("expected yaml from extension, got %q/%q", info.Catalog, info.Format)
	}
	if info.ClipboardCmd != nil {
		t.Fatalf("expected no command for print backend, got %v", info.ClipboardCmd)
	}

	cfg.App.CatalogFormat = catalog.FormatJSON
	if got := describeStartup(cfg, fakeTerminals(true, true)).Format; got != "json" {
		t.Fatalf("expected explicit json format, got %q", got)
	}
}

func TestDescribeStartupRendersOnStderrWhenStdoutPiped(t *testing.T) {
	cfg := config.Config{App: app.Config{Clipboard: "print", Height: 12}}
	info := describeStartup(cfg, fakeTerminals(false, true))
	if info.Render != "stderr" {
		t.Fatalf("expected stderr rendering, got %q", info.Render)
	}
	if want := (viewport{Width: 90, Height: 12, Source: "stderr"}); info.Viewport != want {
		t.Fatalf("expected %#v, got %#v", want, info.Viewport)
	}

	info = describeStartup(cfg, fakeTerminals(false, false))
	if info.Render != "stdout" {
		t.Fatalf("expected stdout without any terminal, got %q", info.Render)
	}
	if info.Viewport.Source != "unknown" {
		t.Fatalf("expected unknown viewport, got %#v", info.Viewport)
	}
}

func TestDescribeStartupPrefersFlagSize(t *testing.T) {
	cfg := config.Config{App: app.Config{Width: 80, Height: 24}, Args: []string{"-width", "80", "-height", "24"}}
	info := describeStartup(cfg, fakeTerminals(true, true))
	if want := (viewport{Width: 80, Height: 24, Source: "flags"}); info.Viewport != want {
		t.Fatalf("expected %#v, got %#v", want, info.Viewport)
	}
	if !reflect.DeepEqual(info.Args, cfg.Args) {
		t.Fatalf("expected argv recorded, got %v", info.Args)
	}
}
