package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/backmassage/mkv2mp4/internal/check"
	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
	"github.com/backmassage/mkv2mp4/internal/pipeline"
)

func newPlanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [dir]",
		Short: "Show subtitle pairing and copy/encode decisions without converting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, dirArg(args)); err != nil {
				return err
			}
			defer a.close()

			if err := check.CheckProbe(a.cfg); err != nil {
				a.log.Error("%v", err)
				return reported(err)
			}

			ctx, stop := a.signalContext(cmd.Context())
			defer stop()

			_, err := pipeline.Plan(ctx, a.cfg, a.log, ffmpeg.ExecRunner{})
			if err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("%v", err)
				return reported(err)
			}
			return err
		},
	}
}
