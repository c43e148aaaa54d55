package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jobscout/jobscout/internal/fallback"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/results"
	"github.com/jobscout/jobscout/internal/types"
)

// SearchResult is the outcome of a search or recommend run: a scored,
// de-duplicated, truncated result list plus whether any fallback produced
// part of it.
type SearchResult struct {
	Items        []types.ResultItem `json:"items"`
	Total        int                `json:"total"`
	FallbackUsed bool               `json:"fallbackUsed"`
}

// Search runs the single-query job search pipeline. The query keywords are
// derived from the profile's preferred title and location.
func (p *Pipeline) Search(ctx context.Context, profile types.Profile, q types.Query) (*SearchResult, error) {
	if strings.TrimSpace(q.Keywords) == "" {
		title := profile.PreferredTitle
		if title == "" {
			return nil, &provider.InvalidRequestError{Field: "keywords", Message: "keywords are required"}
		}
		q.Keywords = fmt.Sprintf("%s jobs in %s", title, profile.Location)
	}
	if q.Location == "" {
		q.Location = profile.Location
	}

	items, usedFallback, err := p.searchOne(ctx, q)
	if err != nil {
		return nil, err
	}
	return p.finish(ctx, [][]types.ResultItem{items}, profile, usedFallback)
}

// Recommend runs the fan-out recommendation pipeline: up to three title
// variants are searched independently and concurrently, merged first-seen
// wins in fixed slot order, then scored and truncated.
func (p *Pipeline) Recommend(ctx context.Context, profile types.Profile, titles []string) (*SearchResult, error) {
	queries := p.buildRecommendQueries(profile, titles)
	if len(queries) == 0 {
		return nil, &provider.InvalidRequestError{Field: "titles", Message: "no job titles to search for"}
	}

	// Fan out; each slot records its own result so the merge order is the
	// fixed query order regardless of completion order.
	sets := make([][]types.ResultItem, len(queries))
	flags := make([]bool, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			items, usedFallback, err := p.searchOne(gctx, q)
			if err != nil {
				return err
			}
			sets[i] = items
			flags[i] = usedFallback
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	usedFallback := false
	for _, f := range flags {
		usedFallback = usedFallback || f
	}
	return p.finish(ctx, sets, profile, usedFallback)
}

// buildRecommendQueries derives up to maxSearchFanOut queries in a fixed,
// deterministic order: explicit titles first, then the profile's preferred
// title, then skill-based variants.
func (p *Pipeline) buildRecommendQueries(profile types.Profile, titles []string) []types.Query {
	seen := make(map[string]bool)
	var queries []types.Query

	add := func(title string) {
		title = strings.TrimSpace(title)
		if title == "" || seen[strings.ToLower(title)] || len(queries) >= maxSearchFanOut {
			return
		}
		seen[strings.ToLower(title)] = true
		queries = append(queries, types.Query{
			Keywords: fmt.Sprintf("%s jobs in %s", title, profile.Location),
			Location: profile.Location,
		})
	}

	for _, title := range titles {
		add(title)
	}
	add(profile.PreferredTitle)
	for _, skill := range profile.Skills {
		add(skill + " developer")
	}
	return queries
}

// searchOne issues a single upstream query. Recoverable provider failures
// are absorbed with deterministic fallback postings; invalid requests
// propagate.
func (p *Pipeline) searchOne(ctx context.Context, q types.Query) ([]types.ResultItem, bool, error) {
	if p.jobs == nil {
		p.logger.Warn("job search provider not configured, using fallback",
			zap.String("keywords", q.Keywords))
		return fallback.Jobs(q), true, nil
	}

	items, err := p.jobs.Search(ctx, q)
	if err == nil {
		return items, false, nil
	}
	if !provider.Recoverable(err) {
		return nil, false, err
	}

	p.logger.Warn("job search failed, using fallback",
		zap.String("keywords", q.Keywords),
		zap.Error(err))
	return fallback.Jobs(q), true, nil
}

// finish merges the per-query result sets, scores them against the profile,
// and truncates to the page size. Truncation happens strictly after scoring.
func (p *Pipeline) finish(ctx context.Context, sets [][]types.ResultItem, profile types.Profile, usedFallback bool) (*SearchResult, error) {
	merged := results.Merge(sets...)
	scored, heuristicUsed := p.scorer.Score(ctx, merged, profile)
	return &SearchResult{
		Items:        results.Truncate(scored, p.pageSize),
		Total:        len(scored),
		FallbackUsed: usedFallback || heuristicUsed,
	}, nil
}
