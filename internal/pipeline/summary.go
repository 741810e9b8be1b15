package pipeline

import (
	"fmt"

	"github.com/backmassage/mkv2mp4/internal/config"
	"github.com/backmassage/mkv2mp4/internal/display"
	"github.com/backmassage/mkv2mp4/internal/logging"
)

// summaryRows returns the counter table shown at the end of a run.
func summaryRows(stats *RunStats) [][]string {
	return [][]string{
		{"Videos", display.FormatCount(stats.Total)},
		{"Converted", display.FormatCount(stats.Converted)},
		{"Skipped", display.FormatCount(stats.Skipped)},
		{"Failed", display.FormatCount(stats.Failed)},
		{"Subtitles without episode code", display.FormatCount(stats.Unmatched)},
		{"Subtitles without video", display.FormatCount(stats.Orphaned)},
		{"Duplicate videos", display.FormatCount(stats.Duplicates)},
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Done: %d converted, %d skipped, %d failed", stats.Converted, stats.Skipped, stats.Failed)
	fmt.Fprintln(out, display.RenderTable(
		[]string{"Summary", "Count"},
		summaryRows(stats),
		[]display.Alignment{display.AlignLeft, display.AlignRight},
	))

	if cfg.Behavior.DryRun {
		log.Info("Total size change: n/a (dry run)")
		return
	}
	if stats.TotalInputBytes == 0 {
		return
	}
	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Success("Total space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("Total size grew by %s (input %s -> output %s)",
			display.FormatBytes(-saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	}
}
