package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

const samplePayload = `{
	"status": "OK",
	"data": [
		{
			"job_id": "abc123",
			"job_title": "Go Developer",
			"employer_name": "Acme",
			"job_city": "Austin",
			"job_state": "TX",
			"job_country": "US",
			"job_is_remote": false,
			"job_apply_link": "https://example.com/jobs/abc123",
			"job_description": "<p>Build <b>services</b> in Go.</p>",
			"job_posted_at_datetime_utc": "2025-05-01T00:00:00Z",
			"job_min_salary": 120000,
			"job_max_salary": 150000,
			"job_salary_currency": "USD",
			"job_salary_period": "YEAR"
		},
		{
			"job_title": "Backend Engineer",
			"employer_name": "Globex",
			"job_is_remote": true
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
}

func TestSearch_NormalizesPostings(t *testing.T) {
	var gotPath string
	var gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-RapidAPI-Key")
		assert.Equal(t, "go developer jobs in Austin", r.URL.Query().Get("query"))
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	})

	items, err := client.Search(context.Background(), types.Query{
		Keywords: "go developer jobs in Austin",
	})

	require.NoError(t, err)
	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "jsearch:abc123", first.ID)
	assert.Equal(t, "Go Developer", first.Title)
	assert.Equal(t, "Acme", first.Company)
	assert.Equal(t, "Austin, TX, US", first.Location)
	assert.Equal(t, "Build services in Go.", first.Description, "HTML is stripped")
	require.NotNil(t, first.Salary)
	assert.Equal(t, 120000.0, first.Salary.Min)
	assert.Equal(t, 150000.0, first.Salary.Max)

	second := items[1]
	assert.Equal(t, "jsearch:unkeyed:1", second.ID, "missing ids get a positional key")
	assert.Equal(t, "Remote", second.Location)
	assert.Nil(t, second.Salary)
}

func TestSearch_EmptyKeywordsFailsWithoutNetwork(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Search(context.Background(), types.Query{Keywords: "   "})

	var invalid *provider.InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "keywords", invalid.Field)
	assert.False(t, called, "no upstream call on invalid request")
	assert.False(t, provider.Recoverable(err))
}

func TestSearch_MissingKeyIsUnconfigured(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Search(context.Background(), types.Query{Keywords: "go developer"})

	var unconfigured *provider.UnconfiguredError
	require.ErrorAs(t, err, &unconfigured)
	assert.Equal(t, provider.KindJobSearch, unconfigured.Kind)
	assert.True(t, provider.Recoverable(err))
}

func TestSearch_UpstreamErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), types.Query{Keywords: "go developer"})

	var unreachable *provider.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Contains(t, unreachable.Error(), "429")
	assert.True(t, provider.Recoverable(err))
}

func TestSearch_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	})

	_, err := client.Search(context.Background(), types.Query{Keywords: "go developer"})

	var malformed *provider.MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.True(t, provider.Recoverable(err))
}
