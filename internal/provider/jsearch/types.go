package jsearch

import "net/http"

// Config defines JSearch API client settings.
type Config struct {
	APIKey     string
	Host       string
	BaseURL    string
	Country    string
	DatePosted string
	HTTPClient *http.Client
	PageSize   int
}

// Client queries the RapidAPI JSearch job search API.
type Client struct {
	apiKey     string
	host       string
	baseURL    string
	country    string
	datePosted string
	httpClient *http.Client
	pageSize   int
}

type searchResponse struct {
	Status string       `json:"status"`
	Data   []jobPosting `json:"data"`
}

type jobPosting struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobIsRemote       bool     `json:"job_is_remote"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobDescription    string   `json:"job_description"`
	JobPostedAtUTC    string   `json:"job_posted_at_datetime_utc"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency"`
	JobSalaryPeriod   string   `json:"job_salary_period"`
	JobRequiredSkills []string `json:"job_required_skills"`
}
