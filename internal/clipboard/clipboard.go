// Package clipboard provides the sinks a committed selection is written to.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	sysclip "github.com/atotto/clipboard"
)

// Sink receives the glyph of a committed selection.
type Sink interface {
	Copy(value string) error
}

// Error reports a failed clipboard write.
type Error struct {
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("clipboard (%s): %v", e.Backend, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrUnavailable is wrapped when no clipboard mechanism can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// DefaultCommand mirrors the classic X11 invocation.
var DefaultCommand = []string{"xclip", "-selection", "clipboard"}

// writeAll is swapped in tests.
var writeAll = sysclip.WriteAll

// System writes through the platform clipboard.
type System struct{}

func (System) Copy(value string) error {
	if sysclip.Unsupported {
		return &Error{Backend: "system", Err: ErrUnavailable}
	}
	if err := writeAll(value); err != nil {
		return &Error{Backend: "system", Err: err}
	}
	return nil
}

const (
	// DefaultCommandTimeout bounds a clipboard program that never exits.
	DefaultCommandTimeout = 5 * time.Second
	// pipeGrace is how long stderr may stay open after the program exits.
	// xclip and friends fork a child that keeps serving the selection and
	// inherits the pipe.
	pipeGrace = 200 * time.Millisecond
)

// Command pipes the value into an external program's stdin. Timeout
// defaults to DefaultCommandTimeout.
type Command struct {
	Argv    []string
	Timeout time.Duration
}

func (c Command) Copy(value string) error {
	argv := c.Argv
	if len(argv) == 0 {
		argv = DefaultCommand
	}
	backend := strings.Join(argv, " ")
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return &Error{Backend: backend, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Stdin = strings.NewReader(value)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = pipeGrace
	err = cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// exited cleanly; only a background child still held stderr
		err = nil
	}
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("timed out after %s: %w", timeout, err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return &Error{Backend: backend, Err: err}
	}
	return nil
}

// Writer prints the value to an io.Writer followed by a newline.
type Writer struct {
	Out io.Writer
}

func (w Writer) Copy(value string) error {
	if w.Out == nil {
		return &Error{Backend: "print", Err: ErrUnavailable}
	}
	if _, err := fmt.Fprintln(w.Out, value); err != nil {
		return &Error{Backend: "print", Err: err}
	}
	return nil
}

// Fallback tries each sink in order and returns nil on the first success.
// When every sink fails the errors are joined.
type Fallback []Sink

func (f Fallback) Copy(value string) error {
	if len(f) == 0 {
		return &Error{Backend: "none", Err: ErrUnavailable}
	}
	var errs []error
	for _, sink := range f {
		err := sink.Copy(value)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Recorder keeps every value it is handed. It optionally fails with Err.
type Recorder struct {
	mu     sync.Mutex
	values []string
	Err    error
}

func (r *Recorder) Copy(value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
	if r.Err != nil {
		return &Error{Backend: "recorder", Err: r.Err}
	}
	return nil
}

// Values returns the recorded values in call order.
func (r *Recorder) Values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Backend names accepted by New.
const (
	BackendAuto    = "auto"
	BackendSystem  = "system"
	BackendCommand = "command"
	BackendPrint   = "print"
)

// New builds a sink for the named backend. argv is used by the command
// backend and by the auto fallback; out is used by the print backend.
func New(backend string, argv []string, out io.Writer) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendAuto:
		return Fallback{System{}, Command{Argv: argv}}, nil
	case BackendSystem:
		return System{}, nil
	case BackendCommand:
		return Command{Argv: argv}, nil
	case BackendPrint:
		return Writer{Out: out}, nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q", backend)
}
