package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobscout/jobscout/internal/fallback"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

// VideosResult is the outcome of a standalone video search.
type VideosResult struct {
	Videos       []types.Video `json:"videos"`
	FallbackUsed bool          `json:"fallbackUsed"`
}

// Videos runs a single video search, degrading to canned entries when the
// provider is unavailable.
func (p *Pipeline) Videos(ctx context.Context, query string, maxResults int) (*VideosResult, error) {
	if query == "" {
		return nil, &provider.InvalidRequestError{Field: "query", Message: "query is required"}
	}

	videos, usedFallback := p.searchVideos(ctx, query, maxResults)
	return &VideosResult{Videos: videos, FallbackUsed: usedFallback}, nil
}

// interviewVideos collects preparation videos for a job title: three fixed
// queries issued in order, de-duplicated by video ID first-seen wins, capped
// at nine.
func (p *Pipeline) interviewVideos(ctx context.Context, jobTitle string) ([]types.Video, bool) {
	queries := []string{
		jobTitle + " interview questions",
		jobTitle + " interview tips",
		jobTitle + " technical interview",
	}

	usedFallback := false
	seen := make(map[string]bool)
	collected := make([]types.Video, 0, maxInterviewVideos)

	for _, query := range queries[:maxVideoQueries] {
		videos, fellBack := p.searchVideos(ctx, query, videosPerQuery)
		usedFallback = usedFallback || fellBack
		for _, video := range videos {
			if seen[video.ID] {
				continue
			}
			seen[video.ID] = true
			collected = append(collected, video)
		}
	}

	if len(collected) > maxInterviewVideos {
		collected = collected[:maxInterviewVideos]
	}
	return collected, usedFallback
}

func (p *Pipeline) searchVideos(ctx context.Context, query string, maxResults int) ([]types.Video, bool) {
	if p.videos == nil {
		return fallback.Videos(query), true
	}

	videos, err := p.videos.Search(ctx, query, maxResults)
	if err != nil {
		p.logger.Warn("video search failed, using fallback",
			zap.String("query", query),
			zap.Error(err))
		return fallback.Videos(query), true
	}
	return videos, false
}
