package naming

import (
	"regexp"
	"strings"
)

// episodePattern finds a season/episode code anywhere in a name: an optional
// S, one or two season digits, a separator (x or e, either case), and two
// episode digits. The leftmost occurrence wins.
var episodePattern = regexp.MustCompile(`[sS]?([0-9]{1,2})[xXeE]([0-9]{2})`)

var titleSeparators = strings.NewReplacer(".", " ", "-", " ")

// Identity is the result of matching a file name against the episode pattern.
// Season and Episode are both set or both empty.
type Identity struct {
	Title   string
	Season  string
	Episode string
}

// Matched reports whether a season/episode code was found.
func (id Identity) Matched() bool { return id.Season != "" }

// Key returns the association key for id. See [Key].
func (id Identity) Key() string { return Key(id.Title, id.Season, id.Episode) }

// Parse extracts an Identity from a file name (base name, extension included).
//
// On a match the title is the text before the code with "." and "-" turned
// into spaces and surrounding whitespace trimmed. A single season digit is
// zero-padded so "2x05" and "S02E05" agree. Without a match the title is
// the unmodified name.
func Parse(name string) Identity {
	loc := episodePattern.FindStringSubmatchIndex(name)
	if loc == nil {
		return Identity{Title: name}
	}
	season := name[loc[2]:loc[3]]
	if len(season) == 1 {
		season = "0" + season
	}
	return Identity{
		Title:   CleanTitle(name[:loc[0]]),
		Season:  season,
		Episode: name[loc[4]:loc[5]],
	}
}

// CleanTitle replaces "." and "-" with spaces and trims the result.
func CleanTitle(s string) string {
	return strings.TrimSpace(titleSeparators.Replace(s))
}

// Key builds "<title> s<season>e<episode>", or just the title when season
// is empty.
func Key(title, season, episode string) string {
	if season == "" {
		return title
	}
	return title + " s" + season + "e" + episode
}

// KeyForMatch returns the key for a file that has no record yet (a
// subtitle). An unmatched identity keys on the raw file name.
func KeyForMatch(filename string, id Identity) string {
	if !id.Matched() {
		return filename
	}
	return id.Key()
}
