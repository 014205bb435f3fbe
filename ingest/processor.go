// Package ingest turns raw video metadata and comments into persisted
// setlist records. It runs one video at a time: fetch, pick the
// authoritative timestamp source, resolve songs and artists against the
// catalogs, rewrite the video record.
package ingest

import (
	"context"
	"log"
	"regexp"
	"strings"

	"setlist/catalog"
	"setlist/storage"
	"setlist/timestamp"
	"setlist/youtube"
)

// Fetcher is the external video platform collaborator.
type Fetcher interface {
	VideoMetadata(ctx context.Context, videoID string) (*youtube.VideoMetadata, error)
	VideoComments(ctx context.Context, videoID string) ([]youtube.Comment, error)
}

// Store persists the catalogs and video records.
type Store interface {
	LoadArtists() (*catalog.Artists, error)
	LoadSongs() (*catalog.Songs, error)
	SaveArtists(*catalog.Artists) error
	SaveSongs(*catalog.Songs) error
	SaveVideo(*storage.Video) error
}

// Processor runs the ingestion pipeline for single videos.
type Processor struct {
	fetcher Fetcher
	store   Store

	// ID generation is injectable so tests get deterministic ids.
	newArtistID catalog.IDFunc
	newSongID   catalog.IDFunc
}

// NewProcessor creates a processor over the given collaborators.
func NewProcessor(fetcher Fetcher, store Store) *Processor {
	return &Processor{
		fetcher:     fetcher,
		store:       store,
		newArtistID: catalog.NewID,
		newSongID:   catalog.NewID,
	}
}

// Options control a single ingestion run.
type Options struct {
	// ForceUserComments ignores the description entirely and builds the
	// setlist from comments only.
	ForceUserComments bool
}

// Result summarizes one processed video.
type Result struct {
	Video      *storage.Video
	Source     timestamp.Source
	NewArtists int
	NewSongs   int
}

// ProcessVideo fetches a video, selects the authoritative timestamp source
// and rewrites the video record in full. Catalog mutations are applied in
// timestamp order within the run so that later timestamps resolve against
// artists and songs created by earlier ones; the catalogs are saved only
// when something actually changed.
func (p *Processor) ProcessVideo(ctx context.Context, videoID string, opts Options) (*Result, error) {
	meta, err := p.fetcher.VideoMetadata(ctx, videoID)
	if err != nil {
		return nil, err
	}

	candidates, source, err := p.selectTimestamps(ctx, videoID, meta.Description, opts.ForceUserComments)
	if err != nil {
		return nil, err
	}
	log.Printf("ingest: %s: %d timestamps from %s", videoID, len(candidates), source)

	artistsData, err := p.store.LoadArtists()
	if err != nil {
		return nil, err
	}
	songsData, err := p.store.LoadSongs()
	if err != nil {
		return nil, err
	}

	var (
		newArtists   int
		newSongs     int
		songsUpdated bool
		timestamps   = make([]storage.VideoTimestamp, 0, len(candidates))
	)
	for _, cand := range candidates {
		artistIDs := make([]string, 0, 1)
		for _, name := range splitArtistNames(cand.rec.ArtistName) {
			res := catalog.ResolveArtist(name, artistsData.Artists, p.newArtistID)
			artistIDs = append(artistIDs, res.ArtistID)
			if res.IsNew {
				artistsData.Artists = append(artistsData.Artists, &catalog.Artist{
					ArtistID: res.ArtistID,
					Name:     name,
				})
				newArtists++
			}
		}

		songRes := catalog.ResolveSong(cand.rec.SongTitle, artistIDs, songsData.Songs, p.newSongID)
		if songRes.IsNew {
			songsData.Songs = append(songsData.Songs, &catalog.Song{
				SongID:    songRes.SongID,
				Title:     cand.rec.SongTitle,
				ArtistIDs: artistIDs,
			})
			newSongs++
		} else if songRes.ArtistsAdded {
			songsUpdated = true
		}

		timestamps = append(timestamps, storage.VideoTimestamp{
			Time:          cand.rec.Time,
			OriginalTime:  cand.rec.OriginalTime,
			SongID:        songRes.SongID,
			CommentSource: string(source),
			CommentDate:   cand.commentDate,
		})
	}

	video := &storage.Video{
		VideoID:       videoID,
		Title:         meta.Title,
		StartDatetime: meta.PublishedAt,
		ThumbnailURL:  meta.Thumbnails.BestURL(),
		Timestamps:    timestamps,
	}
	if err := p.store.SaveVideo(video); err != nil {
		return nil, err
	}
	if newArtists > 0 {
		if err := p.store.SaveArtists(artistsData); err != nil {
			return nil, err
		}
	}
	if newSongs > 0 || songsUpdated {
		if err := p.store.SaveSongs(songsData); err != nil {
			return nil, err
		}
	}

	return &Result{Video: video, Source: source, NewArtists: newArtists, NewSongs: newSongs}, nil
}

var artistSeparator = regexp.MustCompile(`,\s*`)

// splitArtistNames splits a collab credit like "A, B" into individual names.
// An empty artist field yields no names at all rather than one empty name,
// so artist-less records resolve by title alone.
func splitArtistNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var names []string
	for _, part := range artistSeparator.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
