package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Convert runs a command built by [Build]. A non-zero exit is returned as a
// *CommandError wrapped with context.
func Convert(ctx context.Context, runner Runner, args []string) error {
	if len(args) == 0 {
		return errors.New("convert: empty command")
	}
	if err := runner.Run(ctx, args[0], args[1:]...); err != nil {
		return fmt.Errorf("convert %s: %w", args[len(args)-1], err)
	}
	return nil
}

// CommandLine renders argv as a copy-pasteable POSIX shell line. Arguments
// made only of safe characters are left bare; everything else is single
// quoted.
func CommandLine(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !isShellSafe(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("@%+=:,./_-", r)
}
