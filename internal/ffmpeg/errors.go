package ffmpeg

import "regexp"

// Pre-compiled regexes for classifying ffmpeg stderr after a failed
// conversion. Nothing is retried; the match only selects a hint for the log.
var (
	reUnknownEncoder = regexp.MustCompile(
		`Unknown encoder|Encoder not found|Encoder \S+ not found`)

	reSubtitleIssue = regexp.MustCompile(
		`(?i)Subtitle codec .* is not supported|` +
			`Could not find tag for codec .* in stream .*subtitle|` +
			`Error (initializing|while opening encoder for) output stream .*subtitle|` +
			`Subtitle encoding currently only possible from text to text or bitmap to bitmap`)

	reInvalidData = regexp.MustCompile(
		`(?i)Invalid data found when processing input|Invalid UTF-8 in decoded subtitles text`)

	reOutputExists = regexp.MustCompile(`already exists\. (Overwrite|Exiting)`)
)

// Diagnose returns a short hint for a failed ffmpeg run based on its stderr,
// or "" when nothing is recognized.
func Diagnose(stderr string) string {
	switch {
	case reUnknownEncoder.MatchString(stderr):
		return "encoder not available in this ffmpeg build (run 'mkv2mp4 check')"
	case reSubtitleIssue.MatchString(stderr):
		return "subtitle could not be converted to the target subtitle codec"
	case reInvalidData.MatchString(stderr):
		return "input is corrupt or not in the expected format"
	case reOutputExists.MatchString(stderr):
		return "output file already exists (use --force to overwrite)"
	}
	return ""
}
