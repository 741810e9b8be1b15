package naming

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		wantTitle   string
		wantSeason  string
		wantEpisode string
	}{
		{"SxxExx dotted", "Show.Name.S02E05.mkv", "Show Name", "02", "05"},
		{"lowercase sxxexx", "show.name.s01e10.mkv", "show name", "01", "10"},
		{"NxNN subtitle", "Show Name - 2x05.srt", "Show Name", "02", "05"},
		{"two digit x form", "Show Name 12x03.srt", "Show Name", "12", "03"},
		{"no S prefix with e", "Show-Name-03e04.mkv", "Show Name", "03", "04"},
		{"trailing separators trimmed", "Show Name -. S01E01 - Pilot.mkv", "Show Name", "01", "01"},
		{"code at start", "S01E02.mkv", "", "01", "02"},
		{"first occurrence wins", "Show.S01E02.S03E04.mkv", "Show", "01", "02"},
		{"quality tag after code", "My.Show.S01E05.720p.BluRay.mkv", "My Show", "01", "05"},
		{"underscores kept", "My_Show.S01E05.mkv", "My_Show", "01", "05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.filename)
			if !got.Matched() {
				t.Fatalf("Parse(%q) did not match", tc.filename)
			}
			if got.Title != tc.wantTitle || got.Season != tc.wantSeason || got.Episode != tc.wantEpisode {
				t.Errorf("Parse(%q) = %+v, want {%q %q %q}", tc.filename, got, tc.wantTitle, tc.wantSeason, tc.wantEpisode)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	for _, filename := range []string{
		"Movie.Title.2019.mkv",
		"Some Film.mkv",
		"Show.S1E1.mkv",
		"notes.srt",
	} {
		t.Run(filename, func(t *testing.T) {
			got := Parse(filename)
			if got.Matched() {
				t.Fatalf("Parse(%q) unexpectedly matched: %+v", filename, got)
			}
			if got.Title != filename || got.Season != "" || got.Episode != "" {
				t.Errorf("Parse(%q) = %+v, want title = filename and empty season/episode", filename, got)
			}
		})
	}
}

func TestKey(t *testing.T) {
	cases := []struct {
		title, season, episode string
		want                   string
	}{
		{"Show Name", "02", "05", "Show Name s02e05"},
		{"Movie.mkv", "", "", "Movie.mkv"},
		{"", "01", "02", " s01e02"},
	}
	for _, tc := range cases {
		if got := Key(tc.title, tc.season, tc.episode); got != tc.want {
			t.Errorf("Key(%q, %q, %q) = %q, want %q", tc.title, tc.season, tc.episode, got, tc.want)
		}
	}
}

func TestKey_VideoAndSubtitleAgree(t *testing.T) {
	pairs := []struct{ video, subtitle string }{
		{"Show.Name.S02E05.mkv", "Show Name - 2x05.srt"},
		{"Show.Name.S02E05.mkv", "Show.Name.s02e05.srt"},
		{"The-Show-S10E01.mkv", "The Show 10x01.srt"},
	}
	for _, p := range pairs {
		video := Parse(p.video).Key()
		sub := KeyForMatch(p.subtitle, Parse(p.subtitle))
		if video != sub {
			t.Errorf("keys differ: %q -> %q, %q -> %q", p.video, video, p.subtitle, sub)
		}
	}
}

func TestKeyForMatch_Unmatched(t *testing.T) {
	name := "random.srt"
	if got := KeyForMatch(name, Parse(name)); got != name {
		t.Errorf("KeyForMatch = %q, want %q", got, name)
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		in, ext, want string
	}{
		{"Show.S01E01.mkv", ".mp4", "Show.S01E01.mp4"},
		{"/media/mkv files/The.mkv.Story.mkv", ".mp4", "/media/mkv files/The.mkv.Story.mp4"},
		{"clip.MKV", ".m4v", "clip.m4v"},
		{"noext", ".mp4", "noext.mp4"},
	}
	for _, tc := range cases {
		if got := OutputPath(tc.in, tc.ext); got != tc.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tc.in, tc.ext, got, tc.want)
		}
	}
}
