package probe

import (
	"errors"
	"fmt"

	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
)

// ErrUnexpectedStreamCount is the sentinel wrapped by [StreamCountError].
var ErrUnexpectedStreamCount = errors.New("unexpected stream count")

// StreamCountError reports a file whose stream count differs from the
// expected layout.
type StreamCountError struct {
	Path string
	Got  int
	Want int
}

func (e *StreamCountError) Error() string {
	return fmt.Sprintf("%s: found %d streams, expected %d", e.Path, e.Got, e.Want)
}

func (e *StreamCountError) Unwrap() error { return ErrUnexpectedStreamCount }

// Targets names the codecs the output should carry.
type Targets struct {
	VideoCodec string
	AudioCodec string
}

// StreamSelection holds the -c:v / -c:a values for one file: either
// [ffmpeg.Copy] or the target codec to encode to.
type StreamSelection struct {
	VideoCodec string
	AudioCodec string
}

// CopiesVideo reports whether the video stream is remuxed as-is.
func (s StreamSelection) CopiesVideo() bool { return s.VideoCodec == ffmpeg.Copy }

// CopiesAudio reports whether the audio stream is remuxed as-is.
func (s StreamSelection) CopiesAudio() bool { return s.AudioCodec == ffmpeg.Copy }

// Select checks that res has exactly expected streams, then compares each
// stream's codec name with the targets. A stream already in the target
// video codec selects video copy; otherwise one in the target audio codec
// selects audio copy. Anything not found falls back to encoding.
func Select(res *Result, targets Targets, expected int) (StreamSelection, error) {
	if len(res.Streams) != expected {
		return StreamSelection{}, &StreamCountError{Path: res.Path, Got: len(res.Streams), Want: expected}
	}
	sel := StreamSelection{VideoCodec: targets.VideoCodec, AudioCodec: targets.AudioCodec}
	for _, s := range res.Streams {
		if s.CodecName == targets.VideoCodec {
			sel.VideoCodec = ffmpeg.Copy
		} else if s.CodecName == targets.AudioCodec {
			sel.AudioCodec = ffmpeg.Copy
		}
	}
	return sel, nil
}
