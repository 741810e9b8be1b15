// Package config holds runtime configuration: defaults, the optional TOML
// file, CLI flag binding, and validation. With no file and no flags a run
// converts *.mkv to H.264/AAC MP4 and embeds matching *.srt subtitles.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// MismatchPolicy decides what happens when a video does not report the
// expected number of streams, or cannot be probed at all.
type MismatchPolicy string

const (
	PolicyAbort MismatchPolicy = "abort" // Stop the whole batch (default).
	PolicySkip  MismatchPolicy = "skip"  // Skip the file and continue.
)

// Inputs selects which files in the target directory are considered.
type Inputs struct {
	VideoGlob    string `toml:"video_glob"`    // Default: "*.mkv".
	SubtitleGlob string `toml:"subtitle_glob"` // Default: "*.srt".
}

// Targets describes the desired output codecs and container.
type Targets struct {
	VideoCodec      string `toml:"video_codec"`      // Default: "h264".
	AudioCodec      string `toml:"audio_codec"`      // Default: "aac".
	OutputExtension string `toml:"output_extension"` // Default: "mp4" (stored without dot).
}

// Subtitles controls how an attached subtitle file is muxed.
type Subtitles struct {
	Codec    string `toml:"codec"`    // Default: "mov_text".
	Language string `toml:"language"` // Default: "eng". Normalized to ISO 639-2.
}

// Behavior groups per-run switches.
type Behavior struct {
	ExpectedStreams  int            `toml:"expected_streams"`   // Default: 2.
	OnStreamMismatch MismatchPolicy `toml:"on_stream_mismatch"` // Default: "abort".
	DryRun           bool           `toml:"dry_run"`
	Overwrite        bool           `toml:"overwrite"` // Set by --force.
}

// Tools names the external binaries.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Logging controls console and file log output.
type Logging struct {
	Verbose bool      `toml:"verbose"`
	Color   ColorMode `toml:"color"`
	File    string    `toml:"file"` // Optional append-only log file.
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [Load] from an optional TOML file, then by [FlagValues.Apply],
// and finally checked with [Config.Validate] before being passed (by
// pointer) to the packages that need it.
type Config struct {
	// Dir is the directory scanned for inputs (positional arg, default ".").
	Dir string `toml:"-"`

	Inputs    Inputs    `toml:"inputs"`
	Targets   Targets   `toml:"targets"`
	Subtitles Subtitles `toml:"subtitles"`
	Behavior  Behavior  `toml:"behavior"`
	Tools     Tools     `toml:"tools"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Dir: ".",
		Inputs: Inputs{
			VideoGlob:    "*.mkv",
			SubtitleGlob: "*.srt",
		},
		Targets: Targets{
			VideoCodec:      "h264",
			AudioCodec:      "aac",
			OutputExtension: "mp4",
		},
		Subtitles: Subtitles{
			Codec:    "mov_text",
			Language: "eng",
		},
		Behavior: Behavior{
			ExpectedStreams:  2,
			OnStreamMismatch: PolicyAbort,
		},
		Tools: Tools{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		Logging: Logging{
			Color: ColorAuto,
		},
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty
// string, and an empty argument means the working directory.
func NormalizeDirArg(path string) string {
	if path == "" {
		return "."
	}
	if path == "/" {
		return "/"
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// OutputExt returns the output extension with a leading dot.
func (t Targets) OutputExt() string {
	return "." + t.OutputExtension
}

// Validate checks enum fields and normalizes free-form values in place:
// codec names are lowercased, the output extension loses its leading dot,
// and the subtitle language becomes its ISO 639-2 code.
func (c *Config) Validate() error {
	switch c.Logging.Color {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.Logging.Color)
	}

	switch c.Behavior.OnStreamMismatch {
	case PolicyAbort, PolicySkip:
		// valid
	default:
		return fmt.Errorf("invalid behavior.on_stream_mismatch %q (use 'abort' or 'skip')", c.Behavior.OnStreamMismatch)
	}

	if c.Behavior.ExpectedStreams < 1 {
		return fmt.Errorf("behavior.expected_streams must be at least 1 (got %d)", c.Behavior.ExpectedStreams)
	}

	if err := validateGlob("inputs.video_glob", c.Inputs.VideoGlob); err != nil {
		return err
	}
	if err := validateGlob("inputs.subtitle_glob", c.Inputs.SubtitleGlob); err != nil {
		return err
	}

	c.Targets.VideoCodec = strings.ToLower(strings.TrimSpace(c.Targets.VideoCodec))
	c.Targets.AudioCodec = strings.ToLower(strings.TrimSpace(c.Targets.AudioCodec))
	if c.Targets.VideoCodec == "" || c.Targets.AudioCodec == "" {
		return errors.New("targets.video_codec and targets.audio_codec must not be empty")
	}

	ext, err := normalizeExtension(c.Targets.OutputExtension)
	if err != nil {
		return err
	}
	c.Targets.OutputExtension = ext

	c.Subtitles.Codec = strings.TrimSpace(c.Subtitles.Codec)
	if c.Subtitles.Codec == "" {
		return errors.New("subtitles.codec must not be empty")
	}
	lang, err := normalizeLanguage(c.Subtitles.Language)
	if err != nil {
		return err
	}
	c.Subtitles.Language = lang

	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	if c.Tools.FFmpeg == "" || c.Tools.FFprobe == "" {
		return errors.New("tools.ffmpeg and tools.ffprobe must not be empty")
	}

	c.Dir = NormalizeDirArg(c.Dir)
	return nil
}

func validateGlob(name, pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	if strings.ContainsRune(pattern, filepath.Separator) {
		return fmt.Errorf("%s must match file names only (got %q)", name, pattern)
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("%s: invalid pattern %q: %w", name, pattern, err)
	}
	return nil
}

// normalizeExtension accepts "mp4", ".mp4" or ".MP4" and returns "mp4".
func normalizeExtension(raw string) (string, error) {
	ext := strings.ToLower(strings.TrimSpace(raw))
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return "", errors.New("targets.output_extension must not be empty")
	}
	if strings.ContainsAny(ext, `./\`) {
		return "", fmt.Errorf("invalid targets.output_extension %q", raw)
	}
	return ext, nil
}

// normalizeLanguage maps any BCP 47 or ISO 639 code ("en", "eng", "en-US")
// to the three-letter ISO 639-2 code ffmpeg writes into the language tag.
func normalizeLanguage(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.New("subtitles.language must not be empty")
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid subtitles.language %q: %w", raw, err)
	}
	base, _ := tag.Base()
	return base.ISO3(), nil
}
