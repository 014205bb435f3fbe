// Package youtube wraps the YouTube Data API v3 calls the ingestion pipeline
// depends on: video snippets, comment threads and channel video listing.
package youtube

// VideoMetadata is the snippet-level metadata the pipeline consumes.
type VideoMetadata struct {
	// ID is the YouTube video ID (e.g. "dQw4w9WgXcQ").
	ID string
	// Title is the video title.
	Title string
	// Description is the full video description.
	Description string
	// PublishedAt is the publish time as the API reports it (RFC 3339).
	PublishedAt string
	// Thumbnails holds the available thumbnail URLs by size.
	Thumbnails Thumbnails
}

// Thumbnails holds the URLs of the thumbnail sizes a video may offer. Absent
// sizes are empty strings.
type Thumbnails struct {
	Default  string
	Standard string
	High     string
	Maxres   string
}

// BestURL returns the highest-resolution thumbnail available, preferring
// maxres over high over standard over default.
func (t Thumbnails) BestURL() string {
	switch {
	case t.Maxres != "":
		return t.Maxres
	case t.High != "":
		return t.High
	case t.Standard != "":
		return t.Standard
	default:
		return t.Default
	}
}

// Comment is a top-level video comment. Text is the raw textDisplay payload
// and may contain HTML markup.
type Comment struct {
	Text        string
	PublishedAt string
	LikeCount   int64
}

// StreamInfo identifies a channel video found during listing.
type StreamInfo struct {
	VideoID string
	Title   string
}
