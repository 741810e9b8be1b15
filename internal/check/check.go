// Package check provides system diagnostics (the check command) and
// pre-conversion dependency validation (CheckDeps) for ffmpeg, ffprobe and
// the configured encoders.
package check

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/mkv2mp4/internal/config"
	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
)

// Sentinel errors returned by CheckDeps and RunCheck.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrCheckFailed     = errors.New("one or more checks failed")
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
	Debug(string, ...any)
}

// CheckDeps is the pre-conversion validation: it verifies that the
// configured ffmpeg and ffprobe binaries resolve on PATH.
func CheckDeps(cfg *config.Config) error {
	if _, err := lookPath(cfg.Tools.FFmpeg); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := lookPath(cfg.Tools.FFprobe); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// CheckProbe verifies only the ffprobe binary, for commands that inspect
// files without converting them.
func CheckProbe(cfg *config.Config) error {
	if _, err := lookPath(cfg.Tools.FFprobe); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// RunCheck prints tool versions and verifies that the target video and
// audio encoders and the subtitle encoder work. If either binary is
// unusable it stops after the version checks; otherwise every encoder check
// runs. ErrCheckFailed is returned if any check failed.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger, runner ffmpeg.Runner) error {
	log.Info("=== System Check ===")

	ok := true
	ok = checkVersion(ctx, log, runner, cfg.Tools.FFmpeg) && ok
	ok = checkVersion(ctx, log, runner, cfg.Tools.FFprobe) && ok
	if !ok {
		// Nothing below can work without the binaries.
		return ErrCheckFailed
	}

	ok = checkVideoEncoder(ctx, cfg, log, runner) && ok
	ok = checkAudioEncoder(ctx, cfg, log, runner) && ok
	ok = checkSubtitleEncoder(ctx, cfg, log, runner) && ok

	if !ok {
		return ErrCheckFailed
	}
	log.Success("All checks passed")
	return nil
}

// checkVersion verifies binary is on PATH and logs its version string.
func checkVersion(ctx context.Context, log Logger, runner ffmpeg.Runner, binary string) bool {
	path, err := lookPath(binary)
	if err != nil {
		log.Error("%s not found", binary)
		return false
	}
	log.Debug("%s resolved to %s", binary, path)
	out, err := runner.Output(ctx, binary, "-version")
	if err != nil {
		log.Warn("%s found but -version failed: %v", binary, err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", binary, firstLine)
	return true
}

// checkVideoEncoder runs a minimal encode to the target video codec.
func checkVideoEncoder(ctx context.Context, cfg *config.Config, log Logger, runner ffmpeg.Runner) bool {
	codec := cfg.Targets.VideoCodec
	log.Info("Testing %s video encoder...", codec)
	if runSilent(ctx, runner, cfg.Tools.FFmpeg, videoTestArgs(codec)...) {
		log.Success("%s video encoder works", codec)
		return true
	}
	log.Error("%s video test encode failed", codec)
	return false
}

// checkAudioEncoder runs a minimal encode to the target audio codec.
func checkAudioEncoder(ctx context.Context, cfg *config.Config, log Logger, runner ffmpeg.Runner) bool {
	codec := cfg.Targets.AudioCodec
	log.Info("Testing %s audio encoder...", codec)
	if runSilent(ctx, runner, cfg.Tools.FFmpeg, audioTestArgs(codec)...) {
		log.Success("%s audio encoder works", codec)
		return true
	}
	log.Error("%s audio test encode failed", codec)
	return false
}

// checkSubtitleEncoder looks for the subtitle codec in ffmpeg -encoders.
func checkSubtitleEncoder(ctx context.Context, cfg *config.Config, log Logger, runner ffmpeg.Runner) bool {
	codec := cfg.Subtitles.Codec
	out, err := runner.Output(ctx, cfg.Tools.FFmpeg, "-hide_banner", "-encoders")
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return false
	}
	if line, found := findEncoder(string(out), codec); found {
		log.Success("Subtitle encoder: %s", line)
		return true
	}
	log.Error("Subtitle encoder %s not available", codec)
	return false
}

// findEncoder scans ffmpeg -encoders output for an encoder named name. Lines
// look like " S..... mov_text             3GPP Timed Text subtitle".
func findEncoder(encoders, name string) (string, bool) {
	for _, line := range strings.Split(encoders, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

// videoTestArgs returns the ffmpeg arguments for a minimal video test encode.
func videoTestArgs(codec string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", codec,
		"-f", "null", "-",
	}
}

// audioTestArgs returns the ffmpeg arguments for a minimal audio test encode.
func audioTestArgs(codec string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", codec,
		"-f", "null", "-",
	}
}

// runSilent runs a command and reports whether it exited with status 0.
// Output is captured and discarded.
func runSilent(ctx context.Context, runner ffmpeg.Runner, name string, args ...string) bool {
	_, err := runner.Output(ctx, name, args...)
	return err == nil
}
