package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/emoji-picker/internal/app"
	"github.com/atomicstack/emoji-picker/internal/catalog"
	"github.com/atomicstack/emoji-picker/internal/clipboard"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalog      = "EMOJI_PICKER_CATALOG"
	envFormat       = "EMOJI_PICKER_FORMAT"
	envCategory     = "EMOJI_PICKER_CATEGORY"
	envClipboard    = "EMOJI_PICKER_CLIPBOARD"
	envClipboardCmd = "EMOJI_PICKER_CLIPBOARD_CMD"
	envIgnoreCase   = "EMOJI_PICKER_IGNORE_CASE"
	envBestMatch    = "EMOJI_PICKER_BEST_MATCH"
	envWidth        = "EMOJI_PICKER_WIDTH"
	envHeight       = "EMOJI_PICKER_HEIGHT"
	envShowFooter   = "EMOJI_PICKER_FOOTER"
	envTrace        = "EMOJI_PICKER_TRACE"
	envLogFile      = "EMOJI_PICKER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("emoji-picker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a JSON or YAML emoji catalog (empty uses the built-in catalog)")
	format := fs.String("format", envOrDefault(env, envFormat, "auto"), "catalog format: auto, json or yaml")
	category := fs.String("category", envOrDefault(env, envCategory, ""), "category shown at startup (defaults to People, else the first category)")
	backend := fs.String("clipboard", envOrDefault(env, envClipboard, clipboard.BackendAuto), "clipboard backend: auto, system, command or print")
	clipCmd := fs.String("clipboard-cmd", envOrDefault(env, envClipboardCmd, strings.Join(clipboard.DefaultCommand, " ")), "command that receives the glyph on stdin")
	ignoreCase := fs.Bool("ignore-case", envOrBool(env, envIgnoreCase, false), "match filter text case-insensitively")
	bestMatch := fs.Bool("best-match", envOrBool(env, envBestMatch, false), "start the result cursor on the closest match instead of the first entry")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	parsedFormat, err := catalog.ParseFormat(*format)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:   strings.TrimSpace(*catalogPath),
			CatalogFormat: parsedFormat,
			Category:      strings.TrimSpace(*category),
			Clipboard:     strings.ToLower(strings.TrimSpace(*backend)),
			ClipboardCmd:  strings.Fields(*clipCmd),
			IgnoreCase:    *ignoreCase,
			BestMatch:     *bestMatch,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":       *catalogPath,
			"format":        *format,
			"category":      *category,
			"clipboard":     *backend,
			"clipboard-cmd": *clipCmd,
			"ignore-case":   strconv.FormatBool(*ignoreCase),
			"best-match":    strconv.FormatBool(*bestMatch),
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks option combinations that flag parsing alone cannot catch.
func Validate(cfg Config) error {
	switch cfg.App.Clipboard {
	case clipboard.BackendAuto, clipboard.BackendSystem, clipboard.BackendPrint, "":
	case clipboard.BackendCommand:
		if len(cfg.App.ClipboardCmd) == 0 {
			return fmt.Errorf("clipboard backend %q needs -clipboard-cmd", clipboard.BackendCommand)
		}
	default:
		return fmt.Errorf("unknown clipboard backend %q", cfg.App.Clipboard)
	}
	return nil
}
