// Package youtube is a video-search adapter over the YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

const defaultMaxResults = 10

// Config defines YouTube Data API client settings.
type Config struct {
	APIKey string
}

// Client searches YouTube for career and interview preparation videos.
type Client struct {
	apiKey  string
	service *yt.Service
}

// NewClient instantiates a YouTube search client. An empty API key is
// allowed: every search then fails as unconfigured, which callers absorb via
// their fallback path.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	client := &Client{apiKey: cfg.APIKey}
	if cfg.APIKey == "" {
		return client, nil
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}
	client.service = service
	return client, nil
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c != nil && c.service != nil }

// Search runs a single relevance-ordered video search. Filters match the
// intended use: medium-length, high-definition instructional videos.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]types.Video, error) {
	if query == "" {
		return nil, &provider.InvalidRequestError{Field: "query", Message: "query is required"}
	}
	if !c.Configured() {
		return nil, &provider.UnconfiguredError{Kind: provider.KindVideoSearch}
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Order("relevance").
		VideoDuration("medium").
		VideoDefinition("high").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &provider.UnreachableError{Kind: provider.KindVideoSearch, Err: err}
	}

	videos := make([]types.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, types.Video{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			Thumbnail:    thumbnailURL(item.Snippet.Thumbnails),
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			URL:          "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			Query:        query,
		})
	}
	return videos, nil
}

func thumbnailURL(thumbnails *yt.ThumbnailDetails) string {
	if thumbnails == nil {
		return ""
	}
	if thumbnails.High != nil && thumbnails.High.Url != "" {
		return thumbnails.High.Url
	}
	if thumbnails.Default != nil {
		return thumbnails.Default.Url
	}
	return ""
}
