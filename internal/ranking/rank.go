package ranking

import (
	"context"

	"go.uber.org/zap"

	"github.com/jobscout/jobscout/internal/llm"
	"github.com/jobscout/jobscout/internal/types"
)

// Scorer ranks result items against a profile. When the AI client is
// available it is tried first; any failure there is absorbed by the
// heuristic path and never surfaced to the caller.
type Scorer struct {
	ai     llm.Client
	logger *zap.Logger
}

// NewScorer builds a Scorer. ai may be nil, in which case every call uses
// the heuristic path.
func NewScorer(ai llm.Client, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{ai: ai, logger: logger}
}

// Score returns items annotated with scores and reasons, ordered descending
// by score with ties in original order. The second return reports whether
// the heuristic fallback produced the ranking. An empty input returns an
// empty list without invoking any adapter.
func (s *Scorer) Score(ctx context.Context, items []types.ResultItem, profile types.Profile) ([]types.ResultItem, bool) {
	if len(items) == 0 {
		return []types.ResultItem{}, false
	}

	if s.ai != nil && s.ai.Available() {
		ranked, err := AIRank(ctx, s.ai, items, profile)
		if err == nil {
			return ranked, false
		}
		s.logger.Warn("ai ranking failed, using heuristic scorer", zap.Error(err))
	}

	return HeuristicScore(items, profile), true
}
