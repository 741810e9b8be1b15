package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Output(t *testing.T) {
	requireShell(t)
	out, err := ExecRunner{}.Output(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" {
		t.Errorf("out = %q", out)
	}
}

func TestExecRunner_RunFailure(t *testing.T) {
	requireShell(t)
	var stderr bytes.Buffer
	r := ExecRunner{Stderr: &stderr}
	err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")

	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if ce.ExitCode != 3 || ce.Stderr != "boom" {
		t.Errorf("CommandError = %+v", ce)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr not passed through: %q", stderr.String())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), "mkv2mp4-no-such-binary")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Fatalf("expected exec.ErrNotFound, got %v", err)
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.ExitCode != -1 {
		t.Errorf("ExitCode should be -1 for a process that never ran: %v", err)
	}
}

func TestTailBuffer(t *testing.T) {
	tb := &tailBuffer{limit: 5}
	tb.Write([]byte("abc"))
	tb.Write([]byte("defg"))
	if tb.String() != "cdefg" {
		t.Errorf("tail = %q, want cdefg", tb.String())
	}
	tb.Write([]byte("0123456789"))
	if tb.String() != "56789" {
		t.Errorf("tail = %q, want 56789", tb.String())
	}
}
