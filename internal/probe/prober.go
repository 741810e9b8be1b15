package probe

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
)

// Prober runs ffprobe through a [ffmpeg.Runner].
type Prober struct {
	Binary string
	Runner ffmpeg.Runner
}

// New returns a Prober for the given ffprobe binary.
func New(binary string, runner ffmpeg.Runner) *Prober {
	return &Prober{Binary: binary, Runner: runner}
}

// Args returns the ffprobe arguments (binary excluded) for path.
func Args(path string) []string {
	return []string{
		"-hide_banner",
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		ffmpeg.PathArg(path),
	}
}

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result.
func (p *Prober) Probe(ctx context.Context, path string) (*Result, error) {
	out, err := p.Runner.Output(ctx, p.Binary, Args(path)...)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	res, err := ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	if raw.Streams == nil {
		return nil, fmt.Errorf("parse ffprobe JSON: no streams array")
	}
	res := &Result{Streams: make([]Stream, 0, len(raw.Streams))}
	for i := range raw.Streams {
		s := &raw.Streams[i]
		res.Streams = append(res.Streams, Stream{
			Index:     s.Index,
			CodecName: s.CodecName,
			CodecType: s.CodecType,
			Language:  s.Tags["language"],
			Width:     s.Width,
			Height:    s.Height,
			Channels:  s.Channels,
		})
	}
	return res, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeStream struct {
	Index     int               `json:"index"`
	CodecName string            `json:"codec_name"`
	CodecType string            `json:"codec_type"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Channels  int               `json:"channels"`
	Tags      map[string]string `json:"tags"`
}
