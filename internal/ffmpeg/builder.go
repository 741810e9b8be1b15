package ffmpeg

import (
	"strings"

	"github.com/backmassage/mkv2mp4/internal/config"
)

// Copy is the codec value that remuxes a stream without re-encoding.
const Copy = "copy"

// Job is one conversion: the input video, an optional subtitle file, the
// output path, and the per-stream codec decisions ("copy" or an encoder).
type Job struct {
	Input      string
	Subtitle   string
	Output     string
	VideoCodec string
	AudioCodec string
}

// HasSubtitle reports whether the job embeds a subtitle file.
func (j Job) HasSubtitle() bool { return j.Subtitle != "" }

// Build returns the full argv for a job, binary first:
//
//	ffmpeg [-y] -i <video> [-i <subtitle>] -c:v <vc> -c:a <ac>
//	       [-c:s <codec> -metadata:s:s:0 language=<lang>]
//	       -strict -2 -flags +global_header <output>
//
// The language tag targets the first subtitle stream of the output, so it
// does not depend on how many audio/video streams precede it.
func Build(cfg *config.Config, job Job) []string {
	args := make([]string, 0, 20)
	args = append(args, cfg.Tools.FFmpeg)

	if cfg.Behavior.Overwrite {
		args = append(args, "-y")
	}

	// --- Inputs ---
	args = append(args, "-i", PathArg(job.Input))
	if job.HasSubtitle() {
		args = append(args, "-i", PathArg(job.Subtitle))
	}

	// --- Stream codecs ---
	args = append(args, "-c:v", job.VideoCodec, "-c:a", job.AudioCodec)
	if job.HasSubtitle() {
		args = append(args,
			"-c:s", cfg.Subtitles.Codec,
			"-metadata:s:s:0", "language="+cfg.Subtitles.Language,
		)
	}

	// --- Fixed flags ---
	args = append(args, "-strict", "-2", "-flags", "+global_header")

	args = append(args, PathArg(job.Output))
	return args
}

// PathArg keeps a relative path that begins with "-" from being read as an
// option.
func PathArg(p string) string {
	if strings.HasPrefix(p, "-") {
		return "./" + p
	}
	return p
}
