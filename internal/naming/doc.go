// Package naming extracts episode identity from file names and derives the
// keys and output paths built from it.
//
// A name such as "Show.Name.S02E05.mkv" yields title "Show Name", season
// "02" and episode "05", keyed as "Show Name s02e05". A subtitle named
// "Show Name - 2x05.srt" produces the same key, which is how subtitles are
// paired with videos.
package naming
