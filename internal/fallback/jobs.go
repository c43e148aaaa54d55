// Package fallback produces deterministic, offline substitute results for
// every provider kind. Every function here is pure: no I/O, no clock, no
// randomness, and no failure path. Whenever an adapter fails the pipeline
// swaps in the matching fallback, so callers always get a usable result.
package fallback

import (
	"fmt"
	"strings"

	"github.com/jobscout/jobscout/internal/types"
)

// Jobs returns a canned, non-empty result set for a job-search query. IDs
// are qualified with the "fallback" source so they never collide with real
// provider IDs during merging.
func Jobs(q types.Query) []types.ResultItem {
	keywords := strings.TrimSpace(q.Keywords)
	if keywords == "" {
		keywords = "software developer"
	}
	slug := slugify(keywords)
	location := q.Location
	if location == "" {
		location = "Remote"
	}

	title := titleCase(keywords)
	return []types.ResultItem{
		{
			ID:          fmt.Sprintf("fallback:%s:1", slug),
			Title:       title,
			Company:     "Confidential Employer",
			Location:    location,
			Description: fmt.Sprintf("An opportunity matching your search for %q. Live listings are temporarily unavailable; refresh to retry the job boards.", keywords),
			URL:         "https://www.google.com/search?q=" + urlQuery(keywords+" jobs "+location),
		},
		{
			ID:          fmt.Sprintf("fallback:%s:2", slug),
			Title:       "Senior " + title,
			Company:     "Confidential Employer",
			Location:    location,
			Description: fmt.Sprintf("A senior-level opening related to %q sourced from cached listings.", keywords),
			URL:         "https://www.google.com/search?q=" + urlQuery("senior "+keywords+" jobs"),
		},
		{
			ID:          fmt.Sprintf("fallback:%s:3", slug),
			Title:       title + " (Remote)",
			Company:     "Confidential Employer",
			Location:    "Remote",
			Description: fmt.Sprintf("A remote-friendly role related to %q sourced from cached listings.", keywords),
			URL:         "https://www.google.com/search?q=" + urlQuery("remote "+keywords+" jobs"),
		},
	}
}

// Videos returns canned video entries pointing at search pages, mirroring
// the shape of real video results.
func Videos(query string) []types.Video {
	query = strings.TrimSpace(query)
	if query == "" {
		query = "interview preparation"
	}
	return []types.Video{
		{
			ID:           "fallback:" + slugify(query) + ":1",
			Title:        titleCase(query) + " - Complete Guide",
			Description:  fmt.Sprintf("Comprehensive guide covering %s with expert insights and practical tips.", query),
			ChannelTitle: "Career Success",
			URL:          "https://www.youtube.com/results?search_query=" + urlQuery(query),
			Query:        query,
		},
		{
			ID:           "fallback:" + slugify(query) + ":2",
			Title:        "Master " + titleCase(query) + " - Expert Tips",
			Description:  fmt.Sprintf("Professional advice and strategies for %s success.", query),
			ChannelTitle: "Interview Pro",
			URL:          "https://www.youtube.com/results?search_query=" + urlQuery(query+" tips"),
			Query:        query,
		},
		{
			ID:           "fallback:" + slugify(query) + ":3",
			Title:        titleCase(query) + " - Step by Step",
			Description:  fmt.Sprintf("Detailed walkthrough of %s with real examples and practice scenarios.", query),
			ChannelTitle: "Tech Career Hub",
			URL:          "https://www.youtube.com/results?search_query=" + urlQuery(query+" tutorial"),
			Query:        query,
		},
	}
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var sb strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && sb.Len() > 0 {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func urlQuery(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "+")
}
