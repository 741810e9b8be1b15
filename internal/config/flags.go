package config

// This file binds CLI flags. Flags are registered on a pflag.FlagSet owned
// by a cobra command, and applied after the config file so that only flags
// the user actually passed override file values (flag > file > default).

import (
	"github.com/spf13/pflag"
)

// FlagValues receives raw flag values before they are applied to a Config.
type FlagValues struct {
	ConfigPath string

	// Persistent (all commands).
	Verbose bool
	Color   bool
	NoColor bool
	LogFile string

	// Convert command.
	DryRun    bool
	Force     bool
	KeepGoing bool
}

// BindPersistentFlags registers --config, --verbose, --color, --no-color and --log.
func BindPersistentFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.StringVarP(&v.ConfigPath, "config", "c", "", "Configuration file path (default: ./"+FileName+" or ~/.config/mkv2mp4/config.toml)")
	fs.BoolVarP(&v.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVar(&v.Color, "color", false, "Force colored logs")
	fs.BoolVar(&v.NoColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&v.LogFile, "log", "l", "", "Append logs to file")
}

// BindConvertFlags registers --dry-run, --force and --keep-going.
func BindConvertFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.BoolVarP(&v.DryRun, "dry-run", "d", false, "Print ffmpeg commands without running them")
	fs.BoolVarP(&v.Force, "force", "f", false, "Overwrite existing output files")
	fs.BoolVarP(&v.KeepGoing, "keep-going", "k", false, "Skip files with an unexpected stream layout instead of aborting")
}

// Apply copies flags the user set on fs into cfg. Unset flags leave the
// file/default value in place. --no-color wins over --color.
func (v *FlagValues) Apply(cfg *Config, fs *pflag.FlagSet) {
	if fs.Changed("verbose") {
		cfg.Logging.Verbose = v.Verbose
	}
	if fs.Changed("log") {
		cfg.Logging.File = v.LogFile
	}
	if fs.Changed("no-color") && v.NoColor {
		cfg.Logging.Color = ColorNever
	} else if fs.Changed("color") && v.Color {
		cfg.Logging.Color = ColorAlways
	}

	if fs.Changed("dry-run") {
		cfg.Behavior.DryRun = v.DryRun
	}
	if fs.Changed("force") {
		cfg.Behavior.Overwrite = v.Force
	}
	if fs.Changed("keep-going") {
		cfg.Behavior.OnStreamMismatch = PolicyAbort
		if v.KeepGoing {
			cfg.Behavior.OnStreamMismatch = PolicySkip
		}
	}
}
