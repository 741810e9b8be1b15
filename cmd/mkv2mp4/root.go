package main

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/mkv2mp4/internal/config"
)

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mkv2mp4 [dir]",
		Short: "Convert a directory of MKV files to MP4 with matching subtitles",
		Long: `mkv2mp4 converts every video in a directory (default *.mkv) to MP4.
Streams already in the target codec (H.264 video, AAC audio) are copied;
others are re-encoded. A subtitle file whose name carries the same
season/episode code (S02E05 or 2x05) is embedded as a text track.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, dirArg(args))
		},
	}

	config.BindPersistentFlags(rootCmd.PersistentFlags(), &a.flags)
	config.BindConvertFlags(rootCmd.Flags(), &a.flags)

	rootCmd.AddCommand(newPlanCommand(a))
	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
