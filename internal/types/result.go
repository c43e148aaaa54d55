package types

// SalaryRange is an advertised compensation band. Zero values mean the
// posting did not disclose the bound.
type SalaryRange struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Period   string  `json:"period,omitempty"`
}

// ResultItem is a provider-agnostic job posting. ID is provider-qualified
// ("jsearch:abc123", "fallback:go-developer:1") and acts as the identity key
// during de-duplication: two items with the same ID are the same posting,
// first occurrence wins.
type ResultItem struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Company        string       `json:"company,omitempty"`
	Location       string       `json:"location,omitempty"`
	Description    string       `json:"description,omitempty"`
	Salary         *SalaryRange `json:"salary,omitempty"`
	PostedAt       string       `json:"postedAt,omitempty"`
	RequiredSkills []string     `json:"requiredSkills,omitempty"`
	URL            string       `json:"url,omitempty"`

	// Score and ScoreReason are set by the relevance scorer; a nil Score
	// means the item was never ranked (e.g. appended after a partial AI
	// ranking).
	Score       *float64 `json:"score,omitempty"`
	ScoreReason string   `json:"scoreReason,omitempty"`
}

// Query is a normalized upstream search request derived from a Profile plus
// request overrides.
type Query struct {
	Keywords       string            `json:"keywords"`
	Location       string            `json:"location,omitempty"`
	Page           int               `json:"page,omitempty"`
	ResultsPerPage int               `json:"resultsPerPage,omitempty"`
	Filters        map[string]string `json:"filters,omitempty"`
}

// Video is a normalized video-search result.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	ChannelTitle string `json:"channelTitle,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
	URL          string `json:"url"`
	Query        string `json:"query,omitempty"`
}
