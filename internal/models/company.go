package models

import (
	"strings"
	"time"
)

const BaseURL = "https://wellfound.com"

// Company is a startup profile extracted from the Wellfound directory.
// NativeData keeps the verbatim source object for fields outside the
// named schema; it is never promoted into the schema automatically.
type Company struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug,omitempty"`
	Logo        string         `json:"logo,omitempty"`
	Headline    string         `json:"headline,omitempty"`
	Description string         `json:"description,omitempty"`
	Location    string         `json:"location,omitempty"`
	CompanySize string         `json:"company_size,omitempty"`
	CompanyType string         `json:"company_type,omitempty"`
	Funding     string         `json:"funding,omitempty"`
	Website     string         `json:"website,omitempty"`
	Twitter     string         `json:"twitter,omitempty"`
	LinkedIn    string         `json:"linkedin,omitempty"`
	TotalJobs   *int           `json:"total_jobs,omitempty"`
	Badges      []string       `json:"badges,omitempty"`
	FoundedYear *int           `json:"founded_year,omitempty"`
	Industries  []string       `json:"industries,omitempty"`
	CompanyURL  string         `json:"company_url,omitempty"`
	JobsURL     string         `json:"jobs_url,omitempty"`
	SourceURL   string         `json:"source_url,omitempty"`
	ExtractedAt time.Time      `json:"extracted_at"`
	Score       float64        `json:"extraction_success_score,omitempty"`
	Grade       string         `json:"quality_grade,omitempty"`
	NativeData  map[string]any `json:"native_data,omitempty"`
}

// SetSlug records the slug and derives the canonical profile and jobs URLs.
func (c *Company) SetSlug(slug string) {
	c.Slug = slug
	if slug != "" {
		c.CompanyURL = BaseURL + "/company/" + slug
		c.JobsURL = BaseURL + "/company/" + slug + "/jobs"
	}
}

// SlugFromJobsURL extracts the company slug from a jobs URL of the form
// https://wellfound.com/company/<slug>/jobs. Returns "" when the URL does
// not follow that shape.
func SlugFromJobsURL(jobsURL string) string {
	_, rest, ok := strings.Cut(jobsURL, "/company/")
	if !ok {
		return ""
	}
	slug, _, _ := strings.Cut(rest, "/")
	return slug
}
