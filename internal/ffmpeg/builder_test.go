package ffmpeg

import (
	"slices"
	"strings"
	"testing"

	"github.com/backmassage/mkv2mp4/internal/config"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	return &cfg
}

func TestBuild_NoSubtitle(t *testing.T) {
	cfg := testConfig()
	args := Build(cfg, Job{
		Input:      "Show.S01E01.mkv",
		Output:     "Show.S01E01.mp4",
		VideoCodec: Copy,
		AudioCodec: "aac",
	})
	want := []string{
		"ffmpeg", "-i", "Show.S01E01.mkv",
		"-c:v", "copy", "-c:a", "aac",
		"-strict", "-2", "-flags", "+global_header",
		"Show.S01E01.mp4",
	}
	if !slices.Equal(args, want) {
		t.Errorf("Build:\n got %q\nwant %q", args, want)
	}
}

func TestBuild_WithSubtitle(t *testing.T) {
	cfg := testConfig()
	args := Build(cfg, Job{
		Input:      "/media/Show.S02E05.mkv",
		Subtitle:   "/media/Show Name - 2x05.srt",
		Output:     "/media/Show.S02E05.mp4",
		VideoCodec: "h264",
		AudioCodec: Copy,
	})
	want := []string{
		"ffmpeg",
		"-i", "/media/Show.S02E05.mkv",
		"-i", "/media/Show Name - 2x05.srt",
		"-c:v", "h264", "-c:a", "copy",
		"-c:s", "mov_text", "-metadata:s:s:0", "language=eng",
		"-strict", "-2", "-flags", "+global_header",
		"/media/Show.S02E05.mp4",
	}
	if !slices.Equal(args, want) {
		t.Errorf("Build:\n got %q\nwant %q", args, want)
	}
}

func TestBuild_OverwriteAndTools(t *testing.T) {
	cfg := testConfig()
	cfg.Behavior.Overwrite = true
	cfg.Tools.FFmpeg = "/opt/ffmpeg/bin/ffmpeg"
	cfg.Subtitles.Language = "fra"
	args := Build(cfg, Job{Input: "a.mkv", Subtitle: "a.srt", Output: "a.mp4", VideoCodec: Copy, AudioCodec: Copy})

	if args[0] != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("binary = %q", args[0])
	}
	if args[1] != "-y" {
		t.Errorf("expected -y right after binary, got %q", args)
	}
	if !slices.Contains(args, "language=fra") {
		t.Errorf("language tag missing: %q", args)
	}
}

func TestBuild_NoOverwriteFlagByDefault(t *testing.T) {
	args := Build(testConfig(), Job{Input: "a.mkv", Output: "a.mp4", VideoCodec: Copy, AudioCodec: Copy})
	if slices.Contains(args, "-y") {
		t.Errorf("-y present without overwrite: %q", args)
	}
	for _, a := range args {
		if strings.HasPrefix(a, "-c:s") || strings.HasPrefix(a, "-metadata") {
			t.Errorf("subtitle option %q present without subtitle", a)
		}
	}
}

func TestBuild_DashPrefixedPaths(t *testing.T) {
	args := Build(testConfig(), Job{Input: "-weird.mkv", Subtitle: "-weird.srt", Output: "-weird.mp4", VideoCodec: Copy, AudioCodec: Copy})
	for _, want := range []string{"./-weird.mkv", "./-weird.srt", "./-weird.mp4"} {
		if !slices.Contains(args, want) {
			t.Errorf("missing %q in %q", want, args)
		}
	}
}

func TestPathArg(t *testing.T) {
	cases := map[string]string{
		"a.mkv":       "a.mkv",
		"-a.mkv":      "./-a.mkv",
		"/abs/-a.mkv": "/abs/-a.mkv",
		"dir/-a.mkv":  "dir/-a.mkv",
	}
	for in, want := range cases {
		if got := PathArg(in); got != want {
			t.Errorf("PathArg(%q) = %q, want %q", in, got, want)
		}
	}
}
