package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/mkv2mp4/internal/config"
	"github.com/backmassage/mkv2mp4/internal/logging"
)

// app carries flag values and the state built by setup for one command.
type app struct {
	flags      config.FlagValues
	cfg        *config.Config
	configPath string // "" when no file was read
	log        *logging.Logger
}

// setup loads the config file for dir, applies the flags the user set on
// cmd, validates, and opens the logger. Errors from here are bootstrap
// errors: there is no logger yet, so main prints them.
func (a *app) setup(cmd *cobra.Command, dir string) error {
	cfg, path, found, err := config.Load(a.flags.ConfigPath, dir)
	if err != nil {
		return err
	}
	a.flags.Apply(cfg, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	if found {
		a.configPath = path
	}
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

// signalContext cancels the returned context on SIGINT/SIGTERM so the
// pipeline stops and the running ffmpeg is killed.
func (a *app) signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			a.log.Warn("Received interrupt, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
