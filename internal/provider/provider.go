// Package provider defines the upstream provider contracts shared by every
// adapter: the provider kinds, the failure taxonomy, and the interfaces the
// pipelines call through.
package provider

import (
	"context"

	"github.com/jobscout/jobscout/internal/types"
)

// Kind identifies the category of upstream provider an adapter talks to.
type Kind string

// Provider kinds.
const (
	KindJobSearch     Kind = "job-search"
	KindResumeParse   Kind = "resume-parse"
	KindAIGenerate    Kind = "ai-generate"
	KindVideoSearch   Kind = "video-search"
	KindCalendarWrite Kind = "calendar-write"
)

// JobSearcher is an adapter over one job-search upstream. Implementations
// make exactly one upstream call per invocation and never retry; retry
// policy, if any, belongs to the caller.
type JobSearcher interface {
	// Search returns normalized postings for the query. Keywords are
	// required; an empty query fails with InvalidRequestError before any
	// network activity.
	Search(ctx context.Context, q types.Query) ([]types.ResultItem, error)
	// Name identifies the upstream, used to qualify result IDs.
	Name() string
}

// VideoSearcher is an adapter over one video-search upstream.
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]types.Video, error)
}

// CalendarWriter is an adapter over the candidate's calendar. The payload
// contract is narrow: event in, confirmation out.
type CalendarWriter interface {
	CreateInterviewReminder(ctx context.Context, accessToken string, r types.InterviewReminder) ([]types.CalendarEvent, error)
	CreateDeadlineReminder(ctx context.Context, accessToken string, r types.DeadlineReminder) (*types.CalendarEvent, error)
	ListUpcomingInterviews(ctx context.Context, accessToken string, maxResults int) ([]types.CalendarEvent, error)
}
