// Package ffmpeg builds ffmpeg argument lists and runs external commands.
//
// Commands are always executed as an explicit argv through a [Runner]; no
// shell is involved. [CommandLine] renders an argv with shell quoting for
// display only. The same Runner is used by the probe and check packages so
// tests can substitute a fake for every subprocess.
package ffmpeg
