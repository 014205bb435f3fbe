package timestamp

import (
	"regexp"
	"strings"
)

// Source identifies where a block of text came from. The zero-second policy
// differs between the two: a 0:00 entry in a description is a chapter marker
// worth keeping, while in a comment it is an intro annotation and is dropped.
type Source string

const (
	SourceDescription Source = "description"
	SourceComment     Source = "comment"
)

// Record is a single parsed timestamp line. ArtistName is empty when the
// line carried no song/artist delimiter.
type Record struct {
	Time         int
	OriginalTime string
	SongTitle    string
	ArtistName   string
}

var (
	// Matches H:MM:SS and M:SS shaped substrings anywhere in a line, so a
	// leading emoji or label does not interfere.
	timePattern = regexp.MustCompile(`(\d{1,2}:)?(\d{1,2}):(\d{1,2})`)

	// Song/artist separator: a run of slashes or hyphens with whitespace on
	// both sides. The whitespace requirement keeps hyphens inside words
	// ("rain stops, good-bye") from splitting a title.
	delimPattern = regexp.MustCompile(`\s+(/+|-+)\s+`)
)

// Parse scans text line by line and returns timestamp records in order of
// appearance. It is a pure function of its input; candidates that fail the
// noise filters are silently skipped, never an error. The only error is an
// invalid duration, which cannot normally be produced by the line matcher.
func Parse(text string, source Source) ([]Record, error) {
	lines := strings.Split(text, "\n")
	var records []Record

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		loc := timePattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		originalTime := line[loc[0]:loc[1]]
		secs, err := ParseDuration(originalTime)
		if err != nil {
			return nil, err
		}

		remaining := strings.TrimSpace(line[loc[1]:])

		// A timestamp alone on its line labels the following line.
		nextLineUsed := false
		if remaining == "" && i+1 < len(lines) {
			remaining = strings.TrimSpace(lines[i+1])
			nextLineUsed = true
		}

		// Announcement entries and bare "vocals included" annotations carry
		// no song information.
		if strings.Contains(remaining, "告知:") {
			continue
		}
		if remaining == "声入り" {
			continue
		}

		if secs == 0 && source == SourceComment {
			continue
		}

		title, artist := splitTitleArtist(remaining)
		if title == "" {
			continue
		}

		records = append(records, Record{
			Time:         secs,
			OriginalTime: originalTime,
			SongTitle:    title,
			ArtistName:   artist,
		})
		if nextLineUsed {
			i++
		}
	}

	return records, nil
}

// splitTitleArtist splits "title / artist" on the first whitespace-bounded
// delimiter run. Without a usable delimiter the whole text is the title; a
// split that leaves either side empty is treated the same way.
func splitTitleArtist(s string) (title, artist string) {
	if m := delimPattern.FindStringIndex(s); m != nil {
		t := strings.TrimSpace(s[:m[0]])
		a := strings.TrimSpace(s[m[1]:])
		if t != "" && a != "" {
			return t, a
		}
	}
	return s, ""
}

// zeroSpellings are the literal chapter-marker anchors YouTube recognizes.
var zeroSpellings = map[string]bool{
	"0:00":     true,
	"00:00":    true,
	"0:00:00":  true,
	"00:00:00": true,
}

// HasZero reports whether any record is anchored at zero seconds, either by
// its computed time or by a literal zero spelling. Chapter markers always
// start at 0:00, so this is the signal that a description's timestamps are
// structured navigation markers rather than free-text notes.
func HasZero(records []Record) bool {
	for _, r := range records {
		if r.Time == 0 || zeroSpellings[r.OriginalTime] {
			return true
		}
	}
	return false
}
