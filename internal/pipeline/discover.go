package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/mkv2mp4/internal/config"
)

// Discover lists the files directly inside dir whose names match pattern,
// compared case-insensitively. Directories are ignored and nothing is
// recursed into. Hidden files (leading ".") are skipped unless pattern
// itself starts with ".". Paths are returned joined with dir and sorted by
// name.
func Discover(dir, pattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	lowerPattern := strings.ToLower(pattern)
	if _, err := filepath.Match(lowerPattern, ""); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	matchHidden := strings.HasPrefix(pattern, ".")

	var files []string
	for _, e := range entries {
		if e.IsDir() || (!matchHidden && strings.HasPrefix(e.Name(), ".")) {
			continue
		}
		if ok, _ := filepath.Match(lowerPattern, strings.ToLower(e.Name())); !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if e.Type()&os.ModeSymlink != 0 {
			fi, err := os.Stat(path)
			if err != nil || fi.IsDir() {
				continue
			}
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// DiscoverInputs runs Discover for the configured video and subtitle globs.
func DiscoverInputs(cfg *config.Config) (videos, subtitles []string, err error) {
	videos, err = Discover(cfg.Dir, cfg.Inputs.VideoGlob)
	if err != nil {
		return nil, nil, fmt.Errorf("discover videos: %w", err)
	}
	subtitles, err = Discover(cfg.Dir, cfg.Inputs.SubtitleGlob)
	if err != nil {
		return nil, nil, fmt.Errorf("discover subtitles: %w", err)
	}
	return videos, subtitles, nil
}
