package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/mkv2mp4/internal/config"
	"github.com/backmassage/mkv2mp4/internal/term"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical file 700 MiB", 734003200, "700 MiB"},
		{"4.7 GiB", 5046586572, "4.7 GiB"},
		{"negative", -2048, "-2.0 KiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1234567); got != "1,234,567" {
		t.Errorf("FormatCount = %q", got)
	}
	if got := FormatCount(12); got != "12" {
		t.Errorf("FormatCount = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"File", "Size"},
		[][]string{{"Show s01e01", "700 MiB"}, {"Movie"}},
		[]Alignment{AlignLeft, AlignRight},
	)
	for _, want := range []string{"FILE", "SIZE", "Show s01e01", "700 MiB", "Movie", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if RenderTable(nil, [][]string{{"x"}}, nil) != "" {
		t.Error("no headers should render nothing")
	}
}

func TestPrintBanner(t *testing.T) {
	t.Cleanup(func() { term.Configure(config.ColorNever) })

	term.Configure(config.ColorNever)
	var plain bytes.Buffer
	PrintBanner(&plain)
	if strings.Contains(plain.String(), "\033[") {
		t.Error("banner has escape codes with colors disabled")
	}
	if !strings.Contains(plain.String(), "|_|") {
		t.Errorf("banner = %q", plain.String())
	}

	term.Configure(config.ColorAlways)
	var colored bytes.Buffer
	PrintBanner(&colored)
	if !strings.HasPrefix(colored.String(), term.Magenta) {
		t.Error("colored banner should start with magenta")
	}
}
