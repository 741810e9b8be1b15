package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/mkv2mp4/internal/check"
	"github.com/backmassage/mkv2mp4/internal/ffmpeg"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, ffprobe and the configured encoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, "."); err != nil {
				return err
			}
			defer a.close()

			if err := check.RunCheck(cmd.Context(), a.cfg, a.log, ffmpeg.ExecRunner{}); err != nil {
				return reported(err)
			}
			return nil
		},
	}
}
