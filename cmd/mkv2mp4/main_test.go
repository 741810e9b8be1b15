package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/mkv2mp4/internal/check"
)

// isolate keeps the user's real config and log out of CLI tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	want := "mkv2mp4 " + version + " (" + commit + ")\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"dry-run", "force", "keep-going"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("convert flag --%s missing", name)
		}
	}
	for _, name := range []string{"config", "verbose", "color", "no-color", "log"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s missing", name)
		}
	}
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	isolate(t)
	cmd := newRootCommand()
	cmd.SetArgs([]string{"a", "b"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for two directories")
	}
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mkv2mp4.toml"), []byte("[logging]\ncolor = \"sometimes\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newRootCommand()
	cmd.SetArgs([]string{dir})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var rep reportedError
	if errors.As(err, &rep) {
		t.Error("bootstrap errors must not be marked as already logged")
	}
	if !strings.Contains(err.Error(), "sometimes") {
		t.Errorf("error = %v", err)
	}
}

func TestRootCommand_MissingDirectory(t *testing.T) {
	isolate(t)
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope")})
	err := cmd.Execute()
	var rep reportedError
	if !errors.As(err, &rep) {
		t.Fatalf("err = %v, want reported error", err)
	}
}

func TestPlanCommand_NoFfprobe(t *testing.T) {
	isolate(t)
	// Neither ffmpeg nor ffprobe resolves on an empty PATH.
	t.Setenv("PATH", t.TempDir())
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Show.S01E01.mkv"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"plan", dir})
	err := cmd.Execute()
	if !errors.Is(err, check.ErrFfprobeNotFound) {
		t.Fatalf("plan = %v, want ErrFfprobeNotFound", err)
	}
}

func TestDirArg(t *testing.T) {
	if got := dirArg(nil); got != "." {
		t.Errorf("dirArg(nil) = %q", got)
	}
	if got := dirArg([]string{"/media"}); got != "/media" {
		t.Errorf("dirArg = %q", got)
	}
}
