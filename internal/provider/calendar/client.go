// Package calendar is a calendar-write adapter over the Google Calendar API.
// Every operation authenticates with the candidate's OAuth access token; no
// application-level credential is held.
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

const (
	calendarID      = "primary"
	defaultTimezone = "America/New_York"

	interviewDuration = time.Hour
	prepLeadDays      = 3
	prepDuration      = 30 * time.Minute
	deadlineDuration  = 30 * time.Minute
)

// Client writes interview and deadline reminders to the candidate's primary
// calendar.
type Client struct{}

// NewClient instantiates a calendar adapter.
func NewClient() *Client { return &Client{} }

func (c *Client) service(ctx context.Context, accessToken string) (*gcal.Service, error) {
	if accessToken == "" {
		return nil, &provider.UnconfiguredError{Kind: provider.KindCalendarWrite}
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := gcal.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, &provider.UnreachableError{Kind: provider.KindCalendarWrite, Err: err}
	}
	return service, nil
}

// CreateInterviewReminder inserts the interview event plus a preparation
// event three days earlier, and returns both.
func (c *Client) CreateInterviewReminder(ctx context.Context, accessToken string, r types.InterviewReminder) ([]types.CalendarEvent, error) {
	if r.JobTitle == "" {
		return nil, &provider.InvalidRequestError{Field: "jobTitle", Message: "job title is required"}
	}
	if r.InterviewDate.IsZero() {
		return nil, &provider.InvalidRequestError{Field: "interviewDate", Message: "interview date is required"}
	}

	service, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	interview := &gcal.Event{
		Summary:     fmt.Sprintf("Interview: %s at %s", r.JobTitle, r.Company),
		Description: fmt.Sprintf("Interview for %s position at %s\n\n%s", r.JobTitle, r.Company, r.Notes),
		Location:    "TBD - Check with recruiter",
		Start:       eventTime(r.InterviewDate),
		End:         eventTime(r.InterviewDate.Add(interviewDuration)),
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
				{Method: "popup", Minutes: 15},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	prepStart := r.InterviewDate.AddDate(0, 0, -prepLeadDays)
	prep := &gcal.Event{
		Summary: fmt.Sprintf("Interview Prep: %s at %s", r.JobTitle, r.Company),
		Description: fmt.Sprintf("Start preparing for your %s interview at %s\n\n"+
			"Preparation tasks:\n- Research the company\n- Review job description\n"+
			"- Practice common interview questions\n- Prepare questions to ask\n"+
			"- Plan your outfit and route", r.JobTitle, r.Company),
		Start: eventTime(prepStart),
		End:   eventTime(prepStart.Add(prepDuration)),
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: 0},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	events := make([]types.CalendarEvent, 0, 2)
	for _, event := range []*gcal.Event{interview, prep} {
		created, err := service.Events.Insert(calendarID, event).Context(ctx).Do()
		if err != nil {
			return nil, &provider.UnreachableError{Kind: provider.KindCalendarWrite, Err: err}
		}
		events = append(events, mapEvent(created))
	}
	return events, nil
}

// CreateDeadlineReminder inserts a single application-deadline event.
func (c *Client) CreateDeadlineReminder(ctx context.Context, accessToken string, r types.DeadlineReminder) (*types.CalendarEvent, error) {
	if r.JobTitle == "" {
		return nil, &provider.InvalidRequestError{Field: "jobTitle", Message: "job title is required"}
	}
	if r.Deadline.IsZero() {
		return nil, &provider.InvalidRequestError{Field: "deadline", Message: "deadline is required"}
	}

	service, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	event := &gcal.Event{
		Summary: fmt.Sprintf("Application Deadline: %s at %s", r.JobTitle, r.Company),
		Description: fmt.Sprintf("Don't forget to apply for %s at %s\n\n"+
			"Application URL: %s\n\nRemember to:\n- Tailor your resume\n"+
			"- Write a compelling cover letter\n- Double-check all requirements",
			r.JobTitle, r.Company, r.ApplicationURL),
		Start: eventTime(r.Deadline),
		End:   eventTime(r.Deadline.Add(deadlineDuration)),
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, &provider.UnreachableError{Kind: provider.KindCalendarWrite, Err: err}
	}
	mapped := mapEvent(created)
	return &mapped, nil
}

// ListUpcomingInterviews returns future events matching "Interview", soonest
// first.
func (c *Client) ListUpcomingInterviews(ctx context.Context, accessToken string, maxResults int) ([]types.CalendarEvent, error) {
	service, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	resp, err := service.Events.List(calendarID).
		TimeMin(time.Now().UTC().Format(time.RFC3339)).
		MaxResults(int64(maxResults)).
		SingleEvents(true).
		OrderBy("startTime").
		Q("Interview").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &provider.UnreachableError{Kind: provider.KindCalendarWrite, Err: err}
	}

	events := make([]types.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, mapEvent(item))
	}
	return events, nil
}

func eventTime(t time.Time) *gcal.EventDateTime {
	return &gcal.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: defaultTimezone,
	}
}

func mapEvent(event *gcal.Event) types.CalendarEvent {
	mapped := types.CalendarEvent{
		ID:      event.Id,
		Summary: event.Summary,
		Link:    event.HtmlLink,
	}
	if event.Start != nil {
		if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
			mapped.Start = t
		}
	}
	if event.End != nil {
		if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
			mapped.End = t
		}
	}
	return mapped
}
