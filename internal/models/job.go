package models

import (
	"strings"
	"time"
)

// SourceType tags every job row so the shared ats_job_postings table can
// distinguish Wellfound postings from other ATS integrations.
const SourceType = "wellfound"

// Job is a normalized posting extracted from a company jobs page.
type Job struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	ApplyURL    string `json:"apply_url,omitempty"`

	CompanyID   string `json:"company_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	CompanySlug string `json:"company_slug,omitempty"`
	CompanyLogo string `json:"company_logo,omitempty"`

	SalaryMin      *int   `json:"salary_min,omitempty"`
	SalaryMax      *int   `json:"salary_max,omitempty"`
	SalaryCurrency string `json:"salary_currency,omitempty"`
	SalaryText     string `json:"salary_text,omitempty"`

	Skills          []string   `json:"skills,omitempty"`
	ExperienceLevel string     `json:"experience_level,omitempty"`
	Requirements    []string   `json:"requirements,omitempty"`
	PostedDate      *time.Time `json:"posted_date,omitempty"`

	CompanySize       string   `json:"company_size,omitempty"`
	CompanyFunding    string   `json:"company_funding,omitempty"`
	CompanyIndustries []string `json:"company_industries,omitempty"`

	RemoteOK        *bool    `json:"remote_ok,omitempty"`
	VisaSponsorship *bool    `json:"visa_sponsorship,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	EquityOffered   *bool    `json:"equity_offered,omitempty"`

	SourceURL   string         `json:"source_url,omitempty"`
	ExtractedAt time.Time      `json:"extracted_at"`
	Score       float64        `json:"extraction_success_score,omitempty"`
	Grade       string         `json:"quality_grade,omitempty"`
	NativeData  map[string]any `json:"native_data,omitempty"`
}

// SetLocation records the location and derives the remote flag from it.
func (j *Job) SetLocation(location string) {
	j.Location = location
	if location != "" {
		remote := strings.Contains(strings.ToLower(location), "remote")
		j.RemoteOK = &remote
	}
}

// ApplyURLFor builds the canonical apply URL for a job id under a company slug.
func ApplyURLFor(slug, jobID string) string {
	if slug == "" || jobID == "" {
		return ""
	}
	return BaseURL + "/company/" + slug + "/jobs/" + jobID
}
