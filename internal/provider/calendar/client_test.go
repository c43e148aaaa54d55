package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

func TestCreateInterviewReminder_Validation(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	_, err := client.CreateInterviewReminder(ctx, "token", types.InterviewReminder{
		Company:       "Acme",
		InterviewDate: time.Now().Add(48 * time.Hour),
	})
	var invalid *provider.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "jobTitle", invalid.Field)

	_, err = client.CreateInterviewReminder(ctx, "token", types.InterviewReminder{
		JobTitle: "Go Developer",
		Company:  "Acme",
	})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "interviewDate", invalid.Field)
}

func TestCreateDeadlineReminder_Validation(t *testing.T) {
	client := NewClient()

	_, err := client.CreateDeadlineReminder(context.Background(), "token", types.DeadlineReminder{
		Company: "Acme", Deadline: time.Now(),
	})
	var invalid *provider.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "jobTitle", invalid.Field)
}

func TestMissingTokenIsUnconfigured(t *testing.T) {
	client := NewClient()

	_, err := client.ListUpcomingInterviews(context.Background(), "", 5)

	var unconfigured *provider.UnconfiguredError
	require.ErrorAs(t, err, &unconfigured)
	assert.Equal(t, provider.KindCalendarWrite, unconfigured.Kind)
}
