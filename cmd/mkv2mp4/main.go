// Command mkv2mp4 batch-converts the video files in a directory to another
// container/codec combination with ffmpeg, embedding a matching subtitle
// file for each episode when one is present.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		// Errors raised after the logger exists were already logged.
		var reported reportedError
		if !errors.Is(err, context.Canceled) && !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "mkv2mp4: %v\n", err)
		}
		return 1
	}
	return 0
}

// reportedError wraps an error that has already been written to the log.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error { return reportedError{err: err} }
