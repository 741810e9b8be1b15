package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/mkv2mp4/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	if !Enabled() || Red == "" || NC == "" {
		t.Fatal("ColorAlways should enable colors")
	}
	Configure(config.ColorNever)
	if Enabled() || Red != "" || Magenta != "" {
		t.Fatal("ColorNever should clear colors")
	}
}

func TestConfigure_AutoHonorsNoColor(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("NO_COLOR should disable colors in auto mode")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
