package testutil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// BuildBinary compiles the picker from the repository root into a temp dir.
func BuildBinary(t *testing.T) string {
	t.Helper()
	tdir := t.TempDir()
	bin := filepath.Join(tdir, "emoji-picker")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOCACHE="+filepath.Join(tdir, ".gocache"))
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

// LaunchOptions describes one picker run inside tmux.
type LaunchOptions struct {
	Binary  string
	Catalog string
	Args    []string
	Width   int
	Height  int
}

// Picker is a picker process running in its own tmux session. Its stdout
// goes to a file, so the UI renders on stderr in the pane, and its exit code
// is recorded once it ends.
type Picker struct {
	Pane string

	server   *Server
	exitPath string
	outPath  string
}

// LaunchPicker starts the binary in a new session sized to the options.
func (s *Server) LaunchPicker(t *testing.T, opts LaunchOptions) *Picker {
	t.Helper()
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	dir := t.TempDir()
	p := &Picker{
		Pane:     "picker:0.0",
		server:   s,
		exitPath: filepath.Join(dir, "exit-code"),
		outPath:  filepath.Join(dir, "output"),
	}
	argv := []string{shellQuote(opts.Binary), "-log-file", shellQuote(filepath.Join(dir, "picker.log"))}
	if opts.Catalog != "" {
		argv = append(argv, "-catalog", shellQuote(opts.Catalog))
	}
	for _, arg := range opts.Args {
		argv = append(argv, shellQuote(arg))
	}
	// The shell lingers after the picker exits so the pane stays capturable.
	script := "#!/bin/sh\n" +
		strings.Join(argv, " ") + " > " + shellQuote(p.outPath) + "\n" +
		"printf '%s' $? > " + shellQuote(p.exitPath) + "\n" +
		"sleep 300\n"
	scriptPath := filepath.Join(dir, "run.sh")
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write launcher script: %v", err)
	}
	width, height := strconv.Itoa(opts.Width), strconv.Itoa(opts.Height)
	if err := s.command("new-session", "-d", "-x", width, "-y", height, "-s", "picker", scriptPath).Run(); err != nil {
		t.Fatalf("failed to launch picker: %v", err)
	}
	if err := s.command("has-session", "-t", "picker").Run(); err != nil {
		t.Skipf("skipping: unable to create tmux session: %v", err)
	}
	return p
}

// Send types keys into the picker pane.
func (p *Picker) Send(t *testing.T, keys ...string) {
	t.Helper()
	p.server.SendKeys(t, p.Pane, keys...)
}

// WaitForText polls the pane until it shows want. An early non-zero exit
// fails the test.
func (p *Picker) WaitForText(t *testing.T, ctx context.Context, want string) string {
	t.Helper()
	loggedPaneMissing := false
	for {
		select {
		case <-ctx.Done():
			out, _ := p.server.Capture(p.Pane)
			t.Fatalf("timeout waiting for %q: %v\nlast capture:\n%s", want, ctx.Err(), out)
		case <-time.After(50 * time.Millisecond):
			if code := p.ExitCode(); code != "" && code != "0" {
				t.Fatalf("emoji-picker exited early with code %s\n%s", code, p.Output(t))
			}
			out, err := p.server.Capture(p.Pane)
			if err != nil {
				if errors.Is(err, ErrPaneUnavailable) {
					if !loggedPaneMissing {
						t.Logf("waiting for pane %s to become available", p.Pane)
						loggedPaneMissing = true
					}
					continue
				}
				t.Fatalf("capture-pane error: %v", err)
			}
			if strings.Contains(out, want) {
				return out
			}
		}
	}
}

// WaitForExit blocks until the picker records an exit code.
func (p *Picker) WaitForExit(t *testing.T, ctx context.Context) string {
	t.Helper()
	for {
		select {
		case <-ctx.Done():
			t.Fatalf("timeout waiting for exit: %v\nlast capture:\n%s", ctx.Err(), p.capture())
		case <-time.After(50 * time.Millisecond):
			if code := p.ExitCode(); code != "" {
				return code
			}
		}
	}
}

// ExitCode returns the recorded exit code, or "" while the picker runs.
func (p *Picker) ExitCode() string {
	data, err := os.ReadFile(p.exitPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Output returns what the picker wrote to stdout.
func (p *Picker) Output(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(p.outPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("failed to read picker output: %v", err)
	}
	return string(data)
}

func (p *Picker) capture() string {
	out, _ := p.server.Capture(p.Pane)
	return out
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
