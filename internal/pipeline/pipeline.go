// Package pipeline orchestrates each request kind as a linear run:
// build queries, invoke providers, merge, score or generate, truncate,
// respond. Provider failures are absorbed locally by deterministic fallbacks;
// only request-validation failures propagate to the caller.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/jobscout/jobscout/internal/llm"
	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/ranking"
)

const (
	// defaultPageSize caps the result list returned to the caller. Applied
	// after scoring, never before.
	defaultPageSize = 20

	// maxSearchFanOut bounds the number of upstream queries per
	// recommendation run.
	maxSearchFanOut = 3

	// Video fan-out: three queries, three results each, nine returned.
	maxVideoQueries    = 3
	videosPerQuery     = 3
	maxInterviewVideos = 9
)

// Options configures a Pipeline. Nil adapters behave as unconfigured
// providers: their operations run entirely on fallbacks.
type Options struct {
	Jobs     provider.JobSearcher
	Videos   provider.VideoSearcher
	AI       llm.Client
	Logger   *zap.Logger
	PageSize int
}

// Pipeline runs the orchestrated request kinds. Each run is self-contained;
// a Pipeline is safe for concurrent use.
type Pipeline struct {
	jobs     provider.JobSearcher
	videos   provider.VideoSearcher
	ai       llm.Client
	scorer   *ranking.Scorer
	logger   *zap.Logger
	pageSize int
}

// New builds a Pipeline from the given adapters.
func New(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Pipeline{
		jobs:     opts.Jobs,
		videos:   opts.Videos,
		ai:       opts.AI,
		scorer:   ranking.NewScorer(opts.AI, logger),
		logger:   logger,
		pageSize: pageSize,
	}
}

// aiReady reports whether the AI adapter can be called at all.
func (p *Pipeline) aiReady() bool {
	return p.ai != nil && p.ai.Available()
}
