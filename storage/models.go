// Package storage persists the video records and the artist/song catalogs as
// whole-file JSON documents under a single data directory. Every write
// replaces the full file atomically; there is no incremental patching. Files
// are pretty-printed with two-space indentation so unchanged records
// round-trip byte-stable and diff cleanly.
package storage

// VideoTimestamp is one performed song within a video.
type VideoTimestamp struct {
	// Time is the offset into the video in seconds.
	Time int `json:"time"`
	// OriginalTime is the timestamp substring exactly as it was matched.
	OriginalTime string `json:"original_time"`
	// SongID references a catalog Song.
	SongID string `json:"song_id"`
	// CommentSource records which source won prioritization, "description"
	// or "comment".
	CommentSource string `json:"comment_source"`
	// CommentDate is the publish time of the source comment, empty for
	// description-derived timestamps.
	CommentDate string `json:"comment_date,omitempty"`
}

// Video is the persisted record for one karaoke stream. It is rewritten in
// full on every (re)ingestion run.
type Video struct {
	VideoID       string           `json:"video_id"`
	Title         string           `json:"title"`
	StartDatetime string           `json:"start_datetime"`
	ThumbnailURL  string           `json:"thumbnail_url"`
	Timestamps    []VideoTimestamp `json:"timestamps"`
}

// VideosList is the generated index of every stored video, served to the
// front-end viewer.
type VideosList struct {
	Videos      []string `json:"videos"`
	GeneratedAt string   `json:"generated_at"`
	ChannelID   string   `json:"channel_id"`
}
