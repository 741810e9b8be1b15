package pipeline

import (
	"errors"

	"github.com/backmassage/mkv2mp4/internal/naming"
)

// ErrMissingVideoPath is returned by NewMediaItem for an empty video path.
var ErrMissingVideoPath = errors.New("media item requires a video path")

// MediaItem is one video to convert, with its parsed identity and an
// optional subtitle. Title, Season, Episode and Key come from the embedded
// naming.Identity.
type MediaItem struct {
	naming.Identity
	VideoPath    string
	SubtitlePath string
}

// NewMediaItem creates an item for videoPath.
func NewMediaItem(videoPath string, id naming.Identity) (*MediaItem, error) {
	if videoPath == "" {
		return nil, ErrMissingVideoPath
	}
	return &MediaItem{Identity: id, VideoPath: videoPath}, nil
}

// HasSubtitle reports whether a subtitle has been attached.
func (m *MediaItem) HasSubtitle() bool { return m.SubtitlePath != "" }

// AttachSubtitle sets the subtitle path once. It returns false, leaving the
// item unchanged, when a subtitle is already attached.
func (m *MediaItem) AttachSubtitle(path string) bool {
	if m.HasSubtitle() {
		return false
	}
	m.SubtitlePath = path
	return true
}
