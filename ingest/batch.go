package ingest

import (
	"context"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"setlist/youtube"
)

// Lister enumerates channel videos and checks their availability.
type Lister interface {
	ListCompletedStreams(ctx context.Context, channelID string) ([]youtube.StreamInfo, error)
	ListUploads(ctx context.Context, channelID string) ([]youtube.StreamInfo, error)
	IsVideoAvailable(ctx context.Context, videoID string) (bool, error)
}

// VideoIndex is the slice of the store the runner needs to track what is
// already on disk.
type VideoIndex interface {
	VideoExists(videoID string) bool
	ListVideoIDs() ([]string, error)
	DeleteVideo(videoID string) error
	WriteVideosList(channelID string) error
}

// Runner drives ingestion over many videos, one at a time, pausing a fixed
// courtesy delay between them. There is no retry logic: a failed video is
// logged and the batch moves on.
type Runner struct {
	lister    Lister
	processor *Processor
	videos    VideoIndex
	limiter   *rate.Limiter
	keyword   string
}

// NewRunner creates a batch runner. keyword filters channel videos down to
// karaoke streams by title substring; an empty keyword keeps everything.
// delay is the pause between consecutive video ingestions.
func NewRunner(lister Lister, processor *Processor, videos VideoIndex, keyword string, delay time.Duration) *Runner {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Runner{
		lister:    lister,
		processor: processor,
		videos:    videos,
		limiter:   rate.NewLimiter(limit, 1),
		keyword:   keyword,
	}
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    int
	Pruned    int
}

// SyncNew ingests recently completed karaoke streams that are not yet
// stored, prunes records for stored videos that are no longer public or
// unlisted, and regenerates the videos list.
func (r *Runner) SyncNew(ctx context.Context, channelID string) (*BatchResult, error) {
	streams, err := r.lister.ListCompletedStreams(ctx, channelID)
	if err != nil {
		return nil, err
	}
	karaoke := filterByKeyword(streams, r.keyword)
	log.Printf("ingest: %d streams on channel, %d match %q", len(streams), len(karaoke), r.keyword)

	res := &BatchResult{}
	keep := make(map[string]bool, len(karaoke))
	for _, s := range karaoke {
		keep[s.VideoID] = true
	}

	if err := r.processAll(ctx, karaoke, res); err != nil {
		return res, err
	}

	// Drop records for videos that went private or were deleted. Videos
	// simply absent from the latest search window are left alone.
	stored, err := r.videos.ListVideoIDs()
	if err != nil {
		return res, err
	}
	for _, id := range stored {
		if keep[id] {
			continue
		}
		available, err := r.lister.IsVideoAvailable(ctx, id)
		if err != nil {
			log.Printf("ingest: availability check for %s failed: %v", id, err)
			continue
		}
		if !available {
			if err := r.videos.DeleteVideo(id); err != nil {
				return res, err
			}
			res.Pruned++
		}
	}

	if err := r.videos.WriteVideosList(channelID); err != nil {
		return res, err
	}
	return res, nil
}

// BackfillOptions windows a full-channel backfill so it can be spread over
// several quota days.
type BackfillOptions struct {
	// BatchSize limits how many streams are considered; 0 means no limit.
	BatchSize int
	// BatchStart skips that many matching streams before processing.
	BatchStart int
}

// Backfill walks the channel's entire uploads playlist and ingests every
// karaoke stream not yet stored.
func (r *Runner) Backfill(ctx context.Context, channelID string, opts BackfillOptions) (*BatchResult, error) {
	streams, err := r.lister.ListUploads(ctx, channelID)
	if err != nil {
		return nil, err
	}
	karaoke := filterByKeyword(streams, r.keyword)
	log.Printf("ingest: %d uploads on channel, %d match %q", len(streams), len(karaoke), r.keyword)

	if opts.BatchStart > 0 {
		if opts.BatchStart >= len(karaoke) {
			karaoke = nil
		} else {
			karaoke = karaoke[opts.BatchStart:]
		}
	}
	if opts.BatchSize > 0 && opts.BatchSize < len(karaoke) {
		karaoke = karaoke[:opts.BatchSize]
	}

	res := &BatchResult{}
	if err := r.processAll(ctx, karaoke, res); err != nil {
		return res, err
	}
	if err := r.videos.WriteVideosList(channelID); err != nil {
		return res, err
	}
	return res, nil
}

func (r *Runner) processAll(ctx context.Context, streams []youtube.StreamInfo, res *BatchResult) error {
	for _, s := range streams {
		if r.videos.VideoExists(s.VideoID) {
			res.Skipped++
			continue
		}
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := r.processor.ProcessVideo(ctx, s.VideoID, Options{}); err != nil {
			log.Printf("ingest: processing %s failed: %v", s.VideoID, err)
			res.Failed++
			continue
		}
		res.Processed++
	}
	return nil
}

func filterByKeyword(streams []youtube.StreamInfo, keyword string) []youtube.StreamInfo {
	if keyword == "" {
		return streams
	}
	var out []youtube.StreamInfo
	for _, s := range streams {
		if strings.Contains(s.Title, keyword) {
			out = append(out, s)
		}
	}
	return out
}
