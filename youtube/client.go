package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Sentinel errors reported by the client.
var (
	// ErrVideoNotFound indicates the API returned zero items for a video id,
	// which is how deleted and private videos surface.
	ErrVideoNotFound = errors.New("video not found")
	// ErrChannelNotFound indicates the channel id did not resolve.
	ErrChannelNotFound = errors.New("channel not found")
)

const (
	listPageSize    = 50
	commentPageSize = 100
	// maxCommentPages caps comment fetching at 500 comments per video.
	maxCommentPages = 5
)

// Client calls the YouTube Data API v3 with an API key.
type Client struct {
	svc *youtube.Service
}

// NewClient creates a Data API client. An API key is required; there is no
// anonymous fallback.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key required")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// VideoMetadata fetches the snippet for one video.
func (c *Client) VideoMetadata(ctx context.Context, videoID string) (*VideoMetadata, error) {
	resp, err := c.svc.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	sn := resp.Items[0].Snippet
	meta := &VideoMetadata{
		ID:          videoID,
		Title:       sn.Title,
		Description: sn.Description,
		PublishedAt: sn.PublishedAt,
	}
	if t := sn.Thumbnails; t != nil {
		meta.Thumbnails = Thumbnails{
			Default:  thumbnailURL(t.Default),
			Standard: thumbnailURL(t.Standard),
			High:     thumbnailURL(t.High),
			Maxres:   thumbnailURL(t.Maxres),
		}
	}
	return meta, nil
}

func thumbnailURL(t *youtube.Thumbnail) string {
	if t == nil {
		return ""
	}
	return t.Url
}

// VideoComments fetches top-level comments in relevance order, up to
// maxCommentPages pages, flattened into one sequence.
func (c *Client) VideoComments(ctx context.Context, videoID string) ([]Comment, error) {
	var comments []Comment
	pageToken := ""

	for page := 0; page < maxCommentPages; page++ {
		call := c.svc.CommentThreads.List([]string{"snippet"}).
			VideoId(videoID).
			MaxResults(commentPageSize).
			Order("relevance").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("fetch comments for %s: %w", videoID, err)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
				continue
			}
			sn := item.Snippet.TopLevelComment.Snippet
			comments = append(comments, Comment{
				Text:        sn.TextDisplay,
				PublishedAt: sn.PublishedAt,
				LikeCount:   sn.LikeCount,
			})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return comments, nil
}

// ListCompletedStreams lists the channel's most recent finished live streams,
// newest first. This only reaches the latest 50 results; use ListUploads for
// full history.
func (c *Client) ListCompletedStreams(ctx context.Context, channelID string) ([]StreamInfo, error) {
	resp, err := c.svc.Search.List([]string{"id", "snippet"}).
		ChannelId(channelID).
		Type("video").
		EventType("completed").
		Order("date").
		MaxResults(listPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search channel %s: %w", channelID, err)
	}

	var streams []StreamInfo
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		streams = append(streams, StreamInfo{VideoID: item.Id.VideoId, Title: item.Snippet.Title})
	}
	return streams, nil
}

// ListUploads pages through the channel's uploads playlist and returns every
// video on it, newest first.
func (c *Client) ListUploads(ctx context.Context, channelID string) ([]StreamInfo, error) {
	chResp, err := c.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	if len(chResp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}
	playlistID := chResp.Items[0].ContentDetails.RelatedPlaylists.Uploads

	var streams []StreamInfo
	pageToken := ""
	for {
		call := c.svc.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(listPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("fetch playlist %s: %w", playlistID, err)
		}

		for _, item := range resp.Items {
			sn := item.Snippet
			if sn == nil || sn.ResourceId == nil {
				continue
			}
			streams = append(streams, StreamInfo{VideoID: sn.ResourceId.VideoId, Title: sn.Title})
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return streams, nil
}

// IsVideoAvailable reports whether a video is still public or unlisted.
// Deleted and private videos return empty item lists or a non-public status.
func (c *Client) IsVideoAvailable(ctx context.Context, videoID string) (bool, error) {
	resp, err := c.svc.Videos.List([]string{"status"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("fetch status for %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return false, nil
	}
	status := resp.Items[0].Status
	if status == nil {
		return true, nil
	}
	return status.PrivacyStatus == "public" || status.PrivacyStatus == "unlisted", nil
}
