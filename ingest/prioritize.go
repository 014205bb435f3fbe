package ingest

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"setlist/timestamp"
)

// candidate pairs a parsed record with the publish date of the comment it
// came from. Description-derived candidates have no comment date.
type candidate struct {
	rec         timestamp.Record
	commentDate string
}

// selectTimestamps decides whether the description or the comments are the
// authoritative setlist for a video.
//
// A non-empty description whose timestamps include a zero anchor is a
// YouTube chapter list and wins outright. Otherwise comments are parsed in
// descending like-count order and win if any of them yields records. The
// already-parsed description is the last resort. Comments are fetched only
// when they can actually decide the outcome, so a chapter-marker description
// costs no comment quota.
func (p *Processor) selectTimestamps(ctx context.Context, videoID, description string, forceUserComments bool) ([]candidate, timestamp.Source, error) {
	var descRecords []timestamp.Record
	if !forceUserComments {
		var err error
		descRecords, err = timestamp.Parse(description, timestamp.SourceDescription)
		if err != nil {
			return nil, "", err
		}
		if len(descRecords) > 0 && timestamp.HasZero(descRecords) {
			return asCandidates(descRecords), timestamp.SourceDescription, nil
		}
	}

	comments, err := p.fetcher.VideoComments(ctx, videoID)
	if err != nil {
		return nil, "", err
	}
	// Stable, so equally-liked comments keep their API order.
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].LikeCount > comments[j].LikeCount
	})

	var fromComments []candidate
	for _, comment := range comments {
		records, err := timestamp.Parse(decodeCommentHTML(comment.Text), timestamp.SourceComment)
		if err != nil {
			return nil, "", err
		}
		for _, rec := range records {
			fromComments = append(fromComments, candidate{rec: rec, commentDate: comment.PublishedAt})
		}
	}
	if len(fromComments) > 0 || forceUserComments {
		return fromComments, timestamp.SourceComment, nil
	}

	// No usable comments: the description, chapter markers or not, is all
	// there is.
	return asCandidates(descRecords), timestamp.SourceDescription, nil
}

func asCandidates(records []timestamp.Record) []candidate {
	out := make([]candidate, 0, len(records))
	for _, rec := range records {
		out = append(out, candidate{rec: rec})
	}
	return out
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// decodeCommentHTML reduces the API's HTML comment markup to plain text.
// Tags become newlines so <br> keeps timestamp lines separated; only the
// entities the API emits in textDisplay are unescaped.
func decodeCommentHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "\n")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
