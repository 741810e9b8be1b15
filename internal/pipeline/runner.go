package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/mkv2mp4/internal/config"
	"github.com/backmassage/mkv2mp4/internal/display"
	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
	"github.com/backmassage/mkv2mp4/internal/logging"
	"github.com/backmassage/mkv2mp4/internal/naming"
	"github.com/backmassage/mkv2mp4/internal/probe"
)

// ErrRunAborted wraps the item error that stopped a run under the abort
// policy.
var ErrRunAborted = errors.New("run aborted")

// out receives tables and blank separator lines; swapped in tests.
var out io.Writer = os.Stdout

// Run is the top-level batch entry point. It discovers and associates
// files, then probes and converts each catalog item in order.
//
// A returned error means the batch stopped early: ErrRunAborted under the
// abort policy, or the context error on cancellation. ffmpeg failures do
// not stop the batch; they are counted in RunStats.Failed.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, runner ffmpeg.Runner) (RunStats, error) {
	var stats RunStats

	runID := uuid.NewString()
	log.SetRunID(runID)
	log.Debug("Run ID: %s", runID)

	videos, subtitles, err := DiscoverInputs(cfg)
	if err != nil {
		return stats, err
	}

	catalog := Associate(videos, subtitles)
	reportCatalog(log, catalog, &stats)
	stats.Total = catalog.Len()

	if stats.Total == 0 {
		log.Warn("No %s files found in %s", cfg.Inputs.VideoGlob, cfg.Dir)
		return stats, nil
	}

	logBatchHeader(cfg, log, &stats)

	prober := probe.New(cfg.Tools.FFprobe, runner)
	for i, item := range catalog.Items() {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			logSummary(cfg, log, &stats)
			return stats, ctx.Err()
		}
		stats.Current = i + 1

		if err := processItem(ctx, cfg, log, prober, runner, item, &stats); err != nil {
			logSummary(cfg, log, &stats)
			return stats, err
		}
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processItem handles one media item: check output → probe → select →
// build → execute. A non-nil error stops the batch.
func processItem(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	prober *probe.Prober,
	runner ffmpeg.Runner,
	item *MediaItem,
	stats *RunStats,
) error {
	basename := filepath.Base(item.VideoPath)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)
	if item.HasSubtitle() {
		log.Info("  Subtitle: %s", filepath.Base(item.SubtitlePath))
	}
	defer fmt.Fprintln(out)

	outputPath := naming.OutputPath(item.VideoPath, cfg.Targets.OutputExt())
	if outputPath == item.VideoPath {
		log.Warn("Skip: output would overwrite the input (%s)", basename)
		stats.Skipped++
		return nil
	}

	// --- Skip-existing check ---
	if !cfg.Behavior.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			return nil
		}
	}

	// --- Probe and select codecs ---
	res, err := prober.Probe(ctx, item.VideoPath)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return handleMismatch(cfg, log, stats, err)
	}
	if log.Verbose() {
		for _, s := range res.Streams {
			log.Debug("  Stream %s", s.Describe())
		}
	}

	targets := probe.Targets{VideoCodec: cfg.Targets.VideoCodec, AudioCodec: cfg.Targets.AudioCodec}
	sel, err := probe.Select(res, targets, cfg.Behavior.ExpectedStreams)
	if err != nil {
		return handleMismatch(cfg, log, stats, err)
	}
	videoAction, audioAction := actionLabels(sel)
	log.Info("  Video: %s | Audio: %s", videoAction, audioAction)
	log.Info("  -> %s", filepath.Base(outputPath))

	args := ffmpeg.Build(cfg, ffmpeg.Job{
		Input:      item.VideoPath,
		Subtitle:   item.SubtitlePath,
		Output:     outputPath,
		VideoCodec: sel.VideoCodec,
		AudioCodec: sel.AudioCodec,
	})

	// --- Dry-run ---
	if cfg.Behavior.DryRun {
		log.Command("[DRY] %s", ffmpeg.CommandLine(args))
		stats.Converted++
		return nil
	}

	// --- Execute ---
	log.Command("%s", ffmpeg.CommandLine(args))
	start := time.Now()
	if err := ffmpeg.Convert(ctx, runner, args); err != nil {
		removePartial(log, outputPath)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Error("ffmpeg failed: %v", err)
		if hint := ffmpeg.Diagnose(ffmpeg.StderrOf(err)); hint != "" {
			log.Error("  Hint: %s", hint)
		}
		stats.Failed++
		return nil
	}

	// --- Update stats ---
	elapsed := time.Since(start)
	var inSize, outSize int64
	if fi, err := os.Stat(item.VideoPath); err == nil {
		inSize = fi.Size()
	}
	if fi, err := os.Stat(outputPath); err == nil {
		outSize = fi.Size()
	}
	ratio := int64(100)
	if inSize > 0 {
		ratio = outSize * 100 / inSize
	}
	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Converted++

	log.Success("Converted in %s (%d%% of original)", elapsed.Round(time.Second), ratio)
	return nil
}

// handleMismatch applies the stream-mismatch policy to a probe or stream
// count error.
func handleMismatch(cfg *config.Config, log *logging.Logger, stats *RunStats, err error) error {
	if cfg.Behavior.OnStreamMismatch == config.PolicySkip {
		log.Warn("Skip: %v", err)
		stats.Skipped++
		return nil
	}
	log.Error("%v", err)
	return fmt.Errorf("%w: %w", ErrRunAborted, err)
}

func removePartial(log *logging.Logger, path string) {
	if err := os.Remove(path); err == nil {
		log.Debug("Removed partial output %s", filepath.Base(path))
	}
}

// actionLabels describes what happens to the video and audio streams.
func actionLabels(sel probe.StreamSelection) (video, audio string) {
	video, audio = "encode to "+sel.VideoCodec, "encode to "+sel.AudioCodec
	if sel.CopiesVideo() {
		video = "copy"
	}
	if sel.CopiesAudio() {
		audio = "copy"
	}
	return video, audio
}

// --- Logging helpers ---

// reportCatalog logs every subtitle or video that could not be associated
// and records the counts in stats.
func reportCatalog(log *logging.Logger, c *Catalog, stats *RunStats) {
	for _, s := range c.Unmatched {
		log.Warn("Failed to extract info for subtitle %q", filepath.Base(s))
	}
	for _, o := range c.Orphaned {
		if o.Reason == ReasonNoVideo {
			log.Warn("No matching video for subtitle %q (key: %q)", filepath.Base(o.Path), o.Key)
		} else {
			log.Warn("Ignoring subtitle %q: %s (key: %q)", filepath.Base(o.Path), o.Reason, o.Key)
		}
	}
	for _, d := range c.Duplicates {
		log.Warn("Duplicate key %q: ignoring %s (keeping %s)", d.Key, filepath.Base(d.Path), filepath.Base(d.Kept))
	}
	stats.Unmatched = len(c.Unmatched)
	stats.Orphaned = len(c.Orphaned)
	stats.Duplicates = len(c.Duplicates)
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %s videos in %s", display.FormatCount(stats.Total), cfg.Dir)
	log.Info("Target: %s video, %s audio, .%s container",
		cfg.Targets.VideoCodec, cfg.Targets.AudioCodec, cfg.Targets.OutputExtension)
	log.Info("Subtitles: %s (language %s)", cfg.Subtitles.Codec, cfg.Subtitles.Language)
	if cfg.Behavior.OnStreamMismatch == config.PolicySkip {
		log.Info("Stream mismatch: skip file (expected %d streams)", cfg.Behavior.ExpectedStreams)
	} else {
		log.Info("Stream mismatch: abort run (expected %d streams)", cfg.Behavior.ExpectedStreams)
	}
	if cfg.Behavior.DryRun {
		log.Info("Dry run: commands are printed, nothing is written")
	}
	fmt.Fprintln(out)
}
