package probe

import (
	"fmt"
	"strings"
)

// Stream holds the properties of one stream reported by ffprobe.
type Stream struct {
	Index     int
	CodecName string
	CodecType string // "video", "audio", "subtitle", "data", "attachment".
	Language  string // From the stream's language tag; may be empty.
	Width     int
	Height    int
	Channels  int
}

// Result is the parsed output of a single ffprobe call.
type Result struct {
	Path    string
	Streams []Stream
}

// Describe renders one stream for verbose logs, e.g.
// "#0 video h264 1920x1080" or "#1 audio aac 2ch [jpn]".
func (s Stream) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s %s", s.Index, s.CodecType, s.CodecName)
	switch {
	case s.Width > 0 && s.Height > 0:
		fmt.Fprintf(&b, " %dx%d", s.Width, s.Height)
	case s.Channels > 0:
		fmt.Fprintf(&b, " %dch", s.Channels)
	}
	if s.Language != "" {
		fmt.Fprintf(&b, " [%s]", s.Language)
	}
	return b.String()
}

// Summary lists the codec names in stream order, e.g. "h264, aac".
func (r *Result) Summary() string {
	names := make([]string, len(r.Streams))
	for i, s := range r.Streams {
		names[i] = s.CodecName
		if names[i] == "" {
			names[i] = "?"
		}
	}
	return strings.Join(names, ", ")
}
