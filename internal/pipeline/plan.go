package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/backmassage/mkv2mp4/internal/config"
	"github.com/backmassage/mkv2mp4/internal/display"
	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
	"github.com/backmassage/mkv2mp4/internal/logging"
	"github.com/backmassage/mkv2mp4/internal/naming"
	"github.com/backmassage/mkv2mp4/internal/probe"
	"github.com/backmassage/mkv2mp4/internal/term"
)

// PlanRow is one catalog item as the convert command would handle it.
type PlanRow struct {
	Video       string
	Subtitle    string
	Key         string
	Streams     string
	VideoAction string
	AudioAction string
	Output      string
	Note        string // Why the item would be skipped or stop the run.
}

// Plan discovers, associates and probes every item without writing
// anything, then prints a table of the codec decisions. Probe failures are
// reported per row and never stop the plan.
func Plan(ctx context.Context, cfg *config.Config, log *logging.Logger, runner ffmpeg.Runner) ([]PlanRow, error) {
	videos, subtitles, err := DiscoverInputs(cfg)
	if err != nil {
		return nil, err
	}
	catalog := Associate(videos, subtitles)
	var stats RunStats
	reportCatalog(log, catalog, &stats)

	total := catalog.Len()
	if total == 0 {
		log.Warn("No %s files found in %s", cfg.Inputs.VideoGlob, cfg.Dir)
		return nil, nil
	}
	log.Info("Probing %d videos in %s", total, cfg.Dir)

	bar := newProgress(total)
	prober := probe.New(cfg.Tools.FFprobe, runner)
	targets := probe.Targets{VideoCodec: cfg.Targets.VideoCodec, AudioCodec: cfg.Targets.AudioCodec}

	rows := make([]PlanRow, 0, total)
	var counts planCounts
	for _, item := range catalog.Items() {
		if ctx.Err() != nil {
			clearProgress(bar)
			log.Warn("Interrupted")
			return rows, ctx.Err()
		}
		if bar != nil {
			bar.Describe("Probing " + filepath.Base(item.VideoPath))
		}
		row, sel, ok := planItem(ctx, cfg, prober, targets, item)
		rows = append(rows, row)
		counts.add(row, sel, ok)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	clearProgress(bar)

	printPlanTable(rows)
	printPlanSummary(log, counts)
	return rows, nil
}

// planItem builds the row for item. ok reports whether sel holds a codec
// decision, which is false when probing or the stream count check failed.
func planItem(ctx context.Context, cfg *config.Config, prober *probe.Prober, targets probe.Targets, item *MediaItem) (row PlanRow, sel probe.StreamSelection, ok bool) {
	outputPath := naming.OutputPath(item.VideoPath, cfg.Targets.OutputExt())
	row = PlanRow{
		Video:  filepath.Base(item.VideoPath),
		Key:    item.Key(),
		Output: filepath.Base(outputPath),
	}
	if item.HasSubtitle() {
		row.Subtitle = filepath.Base(item.SubtitlePath)
	}

	if outputPath == item.VideoPath {
		row.Note = "output would overwrite input"
		return row, sel, false
	}
	if !cfg.Behavior.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			row.Note = "exists (skip)"
		}
	}

	res, err := prober.Probe(ctx, item.VideoPath)
	if err != nil {
		row.Note = "probe failed"
		return row, sel, false
	}
	row.Streams = res.Summary()

	sel, err = probe.Select(res, targets, cfg.Behavior.ExpectedStreams)
	if err != nil {
		row.Note = fmt.Sprintf("%d streams, expected %d", len(res.Streams), cfg.Behavior.ExpectedStreams)
		return row, sel, false
	}
	row.VideoAction, row.AudioAction = actionLabels(sel)
	return row, sel, true
}

// planCounts tallies plan rows for the closing summary.
type planCounts struct {
	total, remux, encode, problems int
}

func (c *planCounts) add(row PlanRow, sel probe.StreamSelection, ok bool) {
	c.total++
	switch {
	case !ok || row.Note != "":
		c.problems++
	case sel.CopiesVideo() && sel.CopiesAudio():
		c.remux++
	default:
		c.encode++
	}
}

func printPlanTable(rows []PlanRow) {
	headers := []string{"Video", "Subtitle", "Key", "Streams", "Video Action", "Audio Action", "Output", "Note"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Video, r.Subtitle, r.Key, r.Streams, r.VideoAction, r.AudioAction, r.Output, r.Note})
	}
	fmt.Fprintln(out, display.RenderTable(headers, cells, nil))
	fmt.Fprintln(out)
}

func printPlanSummary(log *logging.Logger, c planCounts) {
	log.Info("Planned %s videos: %s remux only, %s need encoding",
		display.FormatCount(c.total), display.FormatCount(c.remux), display.FormatCount(c.encode))
	if c.problems > 0 {
		log.Warn("%s videos would be skipped or stop the run (see Note)", display.FormatCount(c.problems))
	} else {
		log.Success("No problems detected")
	}
}

// newProgress returns a probe progress bar on a TTY, or nil when stderr is
// piped or logged.
func newProgress(total int) *progressbar.ProgressBar {
	if !term.IsTerminal(os.Stderr) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Probing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(term.Enabled()),
	)
}

func clearProgress(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}
	_ = bar.Finish()
}
