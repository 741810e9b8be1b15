package naming

import (
	"path/filepath"
	"strings"
)

// OutputPath swaps the extension of videoPath for ext (with leading dot).
// Only the final extension changes; "mkv" elsewhere in the name is kept.
//
//	/media/Show.S01E01.mkv  ->  /media/Show.S01E01.mp4
func OutputPath(videoPath, ext string) string {
	return strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ext
}
