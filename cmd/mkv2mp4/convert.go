package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/mkv2mp4/internal/check"
	"github.com/backmassage/mkv2mp4/internal/display"
	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
	"github.com/backmassage/mkv2mp4/internal/lockfile"
	"github.com/backmassage/mkv2mp4/internal/pipeline"
)

func (a *app) runConvert(cmd *cobra.Command, dir string) error {
	if err := a.setup(cmd, dir); err != nil {
		return err
	}
	defer a.close()
	cfg, log := a.cfg, a.log

	// Logger available: all output goes through log from here on.
	display.PrintBanner(cmd.OutOrStdout())
	log.Info("=== mkv2mp4 v%s (%s) ===", version, commit)
	if a.configPath != "" {
		log.Info("Config: %s", a.configPath)
	}
	log.Info("Dir: %s", cfg.Dir)
	if p := log.FilePath(); p != "" {
		log.Info("Log file: %s", p)
	}
	if cfg.Behavior.DryRun {
		log.Warn("DRY RUN: commands are printed, no files will be written")
	}

	if fi, err := os.Stat(cfg.Dir); err != nil || !fi.IsDir() {
		log.Error("Directory not found: %s", cfg.Dir)
		return reported(fmt.Errorf("directory not found: %s", cfg.Dir))
	}

	// Fail fast if ffmpeg/ffprobe are unavailable.
	if err := check.CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		return reported(err)
	}

	if !cfg.Behavior.DryRun {
		lock, err := lockfile.Acquire(cfg.Dir)
		if err != nil {
			log.Error("%v", err)
			return reported(err)
		}
		defer func() {
			if err := lock.Release(); err != nil {
				log.Warn("Release lock: %v", err)
			}
		}()
	}

	ctx, stop := a.signalContext(cmd.Context())
	defer stop()

	runner := ffmpeg.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
	stats, err := pipeline.Run(ctx, cfg, log, runner)
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, pipeline.ErrRunAborted):
		log.Error("Run aborted (use --keep-going to skip such files)")
		return reported(err)
	case err != nil:
		log.Error("%v", err)
		return reported(err)
	}

	if stats.Failed > 0 {
		return reported(fmt.Errorf("%d conversions failed", stats.Failed))
	}
	return nil
}
