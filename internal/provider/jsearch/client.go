// Package jsearch is a job-search adapter over the RapidAPI JSearch API.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobscout/jobscout/internal/provider"
	"github.com/jobscout/jobscout/internal/types"
)

const (
	providerName      = "jsearch"
	defaultBaseURL    = "https://jsearch.p.rapidapi.com"
	defaultHost       = "jsearch.p.rapidapi.com"
	defaultCountry    = "us"
	defaultDatePosted = "all"
	defaultPageSize   = 10
)

// NewClient instantiates a JSearch API client. An empty API key is allowed:
// the client reports every search as unconfigured, which callers absorb via
// their fallback path.
func NewClient(cfg Config) *Client {
	host := cfg.Host
	if host == "" {
		host = defaultHost
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	country := cfg.Country
	if country == "" {
		country = defaultCountry
	}

	datePosted := cfg.DatePosted
	if datePosted == "" {
		datePosted = defaultDatePosted
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		apiKey:     cfg.APIKey,
		host:       host,
		baseURL:    baseURL,
		country:    country,
		datePosted: datePosted,
		httpClient: httpClient,
		pageSize:   pageSize,
	}
}

// Name identifies the upstream for result ID qualification.
func (c *Client) Name() string { return providerName }

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c != nil && c.apiKey != "" }

// Search queries JSearch with the given keywords and normalizes the postings.
// Exactly one upstream call is made; no retries.
func (c *Client) Search(ctx context.Context, q types.Query) ([]types.ResultItem, error) {
	if strings.TrimSpace(q.Keywords) == "" {
		return nil, &provider.InvalidRequestError{Field: "keywords", Message: "keywords are required"}
	}
	if !c.Configured() {
		return nil, &provider.UnconfiguredError{Kind: provider.KindJobSearch}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildSearchURL(q), nil)
	if err != nil {
		return nil, &provider.UnreachableError{Kind: provider.KindJobSearch, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &provider.UnreachableError{Kind: provider.KindJobSearch, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &provider.UnreachableError{
			Kind: provider.KindJobSearch,
			Err:  fmt.Errorf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &provider.MalformedResponseError{
			Kind:   provider.KindJobSearch,
			Detail: fmt.Sprintf("decode response: %v", err),
		}
	}

	items := make([]types.ResultItem, 0, len(payload.Data))
	for i, posting := range payload.Data {
		items = append(items, mapPosting(posting, i))
	}
	return items, nil
}

func (c *Client) buildSearchURL(q types.Query) string {
	values := url.Values{}
	values.Set("query", q.Keywords)
	values.Set("page", fmt.Sprint(max(q.Page, 1)))
	values.Set("num_pages", "1")
	values.Set("country", c.country)
	values.Set("date_posted", c.datePosted)
	if q.Location != "" {
		values.Set("location", q.Location)
	}
	for key, value := range q.Filters {
		values.Set(key, value)
	}
	return c.baseURL + "/search?" + values.Encode()
}

func mapPosting(posting jobPosting, index int) types.ResultItem {
	id := posting.JobID
	if id == "" {
		id = fmt.Sprintf("unkeyed:%d", index)
	}

	item := types.ResultItem{
		ID:             providerName + ":" + id,
		Title:          posting.JobTitle,
		Company:        posting.EmployerName,
		Location:       formatLocation(posting),
		Description:    stripHTML(posting.JobDescription),
		PostedAt:       posting.JobPostedAtUTC,
		RequiredSkills: posting.JobRequiredSkills,
		URL:            posting.JobApplyLink,
	}

	if posting.JobMinSalary != nil || posting.JobMaxSalary != nil {
		salary := &types.SalaryRange{
			Currency: posting.JobSalaryCurrency,
			Period:   posting.JobSalaryPeriod,
		}
		if posting.JobMinSalary != nil {
			salary.Min = *posting.JobMinSalary
		}
		if posting.JobMaxSalary != nil {
			salary.Max = *posting.JobMaxSalary
		}
		item.Salary = salary
	}

	return item
}

func formatLocation(posting jobPosting) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{posting.JobCity, posting.JobState, posting.JobCountry} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	location := strings.Join(parts, ", ")
	if posting.JobIsRemote {
		if location == "" {
			return "Remote"
		}
		return "Remote, " + location
	}
	return location
}

// stripHTML flattens HTML job descriptions to plain text. Inputs that are
// already plain text pass through unchanged.
func stripHTML(description string) string {
	if !strings.ContainsAny(description, "<>") {
		return description
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description
	}
	text := doc.Text()
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
