package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

var ErrPaneUnavailable = errors.New("tmux pane unavailable")

// RequireTmux skips the calling test when tmux is not on PATH.
func RequireTmux(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("skipping: tmux binary not available")
	}
}

// Server is a throwaway tmux server that hosts picker sessions.
type Server struct {
	Socket string
	Dir    string
}

// StartServer boots a tmux server on its own socket. It is killed when the
// test finishes.
func StartServer(t *testing.T) *Server {
	t.Helper()
	RequireTmux(t)
	dir, err := os.MkdirTemp("/tmp", "emoji-picker-*")
	if err != nil {
		t.Fatalf("failed to create tmux temp dir: %v", err)
	}
	s := &Server{Socket: filepath.Join(dir, "tmux.sock"), Dir: dir}
	if err := s.command("-f", "/dev/null", "new-session", "-d", "-s", "idle", "sleep", "600").Run(); err != nil {
		_ = os.RemoveAll(dir)
		t.Skipf("skipping: failed to start tmux server: %v", err)
	}
	t.Cleanup(func() {
		s.kill(t)
		_ = os.RemoveAll(dir)
	})
	return s
}

// Capture returns the visible text of a pane.
func (s *Server) Capture(target string) (string, error) {
	out, err := s.command("capture-pane", "-p", "-t", target).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrPaneUnavailable
		}
		return "", fmt.Errorf("capture-pane failed: %w", err)
	}
	return string(out), nil
}

// SendKeys types keys into a pane. Arguments follow tmux send-keys.
func (s *Server) SendKeys(t *testing.T, target string, keys ...string) {
	t.Helper()
	args := append([]string{"send-keys", "-t", target}, keys...)
	if err := s.command(args...).Run(); err != nil {
		t.Fatalf("send-keys failed: %v", err)
	}
}

func (s *Server) command(args ...string) *exec.Cmd {
	cmd := exec.Command("tmux", append([]string{"-S", s.Socket}, args...)...)
	env := make([]string, 0, len(os.Environ())+2)
	for _, entry := range os.Environ() {
		if strings.HasPrefix(entry, "TMUX=") {
			continue
		}
		env = append(env, entry)
	}
	cmd.Env = append(env, "TMUX=", "TMUX_TMPDIR="+s.Dir)
	return cmd
}

// kill stops the server over a control-mode client, falling back to the
// tmux CLI.
func (s *Server) kill(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := gotmux.NewTmuxWithOptions(s.Socket, gotmux.WithContext(ctx))
	if err == nil {
		defer client.Close()
		err = client.KillServer()
	}
	if err != nil {
		t.Logf("control-mode kill failed for %s: %v; using kill-server", s.Socket, err)
		_ = s.command("kill-server").Run()
	}
}
