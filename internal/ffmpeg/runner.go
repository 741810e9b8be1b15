package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Output runs name and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs name with its output passed through to the terminal.
	Run(ctx context.Context, name string, args ...string) error
}

// stderrTail bounds how much stderr is kept for error reports.
const stderrTail = 8 << 10

// CommandError describes a command that could not start or exited non-zero.
type CommandError struct {
	Name     string
	ExitCode int    // -1 when the process never ran.
	Stderr   string // Trailing stderr output, possibly truncated.
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec. Stdin is left unset (/dev/null) so
// ffmpeg never blocks on an interactive prompt.
type ExecRunner struct {
	Stdout io.Writer // Receives Run's stdout; nil discards.
	Stderr io.Writer // Receives Run's stderr; nil discards.
}

// Output implements [Runner].
func (r ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	tail := &tailBuffer{limit: stderrTail}
	cmd.Stderr = tail
	out, err := cmd.Output()
	if err != nil {
		return out, newCommandError(name, err, tail.String())
	}
	return out, nil
}

// Run implements [Runner]. Stderr is tee'd so a failure can report its tail.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	tail := &tailBuffer{limit: stderrTail}
	cmd.Stdout = r.Stdout
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, tail)
	} else {
		cmd.Stderr = tail
	}
	if err := cmd.Run(); err != nil {
		return newCommandError(name, err, tail.String())
	}
	return nil
}

func newCommandError(name string, err error, stderr string) *CommandError {
	ce := &CommandError{Name: name, ExitCode: -1, Stderr: strings.TrimSpace(stderr), Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ce.ExitCode = exitErr.ExitCode()
	}
	return ce
}

// StderrOf returns the captured stderr carried by err, if any.
func StderrOf(err error) string {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Stderr
	}
	return ""
}

// tailBuffer keeps only the last limit bytes written to it.
type tailBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) >= t.limit {
		t.buf.Reset()
		t.buf.Write(p[len(p)-t.limit:])
		return n, nil
	}
	if over := t.buf.Len() + len(p) - t.limit; over > 0 {
		t.buf.Next(over)
	}
	t.buf.Write(p)
	return n, nil
}

func (t *tailBuffer) String() string { return t.buf.String() }
