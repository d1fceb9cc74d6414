// Package quality scores extracted records for field completeness.
// Every checklist field carries equal weight; the checklist is data so
// each field's contribution can be tested independently.
package quality

import (
	"math"
	"strings"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
)

// Score is the derived completeness pair attached to a record after
// scoring. Recomputing requires producing a new record.
type Score struct {
	Value float64
	Grade string
}

type jobCheck struct {
	name    string
	present func(*models.Job) bool
}

// jobChecklist is the fixed 15-field completeness checklist for postings.
var jobChecklist = []jobCheck{
	{"title", func(j *models.Job) bool { return filled(j.Title) }},
	{"description", func(j *models.Job) bool { return filled(j.Description) }},
	{"location", func(j *models.Job) bool { return filled(j.Location) }},
	{"job_type", func(j *models.Job) bool { return filled(j.JobType) }},
	{"apply_url", func(j *models.Job) bool { return filled(j.ApplyURL) }},
	{"company_name", func(j *models.Job) bool { return filled(j.CompanyName) }},
	{"salary", func(j *models.Job) bool {
		return j.SalaryMin != nil || j.SalaryMax != nil || filled(j.SalaryText)
	}},
	{"skills", func(j *models.Job) bool { return len(j.Skills) > 0 }},
	{"experience_level", func(j *models.Job) bool { return filled(j.ExperienceLevel) }},
	{"posted_date", func(j *models.Job) bool { return j.PostedDate != nil }},
	{"company_size", func(j *models.Job) bool { return filled(j.CompanySize) }},
	{"remote_ok", func(j *models.Job) bool { return j.RemoteOK != nil }},
	{"benefits", func(j *models.Job) bool { return len(j.Benefits) > 0 }},
	{"company_industries", func(j *models.Job) bool { return len(j.CompanyIndustries) > 0 }},
	{"company_funding", func(j *models.Job) bool { return filled(j.CompanyFunding) }},
}

type companyCheck struct {
	name    string
	present func(*models.Company) bool
}

var companyChecklist = []companyCheck{
	{"name", func(c *models.Company) bool { return filled(c.Name) }},
	{"slug", func(c *models.Company) bool { return filled(c.Slug) }},
	{"headline", func(c *models.Company) bool { return filled(c.Headline) }},
	{"location", func(c *models.Company) bool { return filled(c.Location) }},
	{"company_size", func(c *models.Company) bool { return filled(c.CompanySize) }},
	{"website", func(c *models.Company) bool { return filled(c.Website) }},
	{"funding", func(c *models.Company) bool { return filled(c.Funding) }},
	{"industries", func(c *models.Company) bool { return len(c.Industries) > 0 }},
	{"founded_year", func(c *models.Company) bool { return c.FoundedYear != nil }},
	{"total_jobs", func(c *models.Company) bool { return c.TotalJobs != nil }},
}

// ScoreJob computes the completeness score for a posting. Pure: it never
// mutates the record.
func ScoreJob(job *models.Job) Score {
	filledCount := 0
	for _, check := range jobChecklist {
		if check.present(job) {
			filledCount++
		}
	}
	return fromCounts(filledCount, len(jobChecklist))
}

// ScoreCompany computes the completeness score for a company profile.
func ScoreCompany(company *models.Company) Score {
	filledCount := 0
	for _, check := range companyChecklist {
		if check.present(company) {
			filledCount++
		}
	}
	return fromCounts(filledCount, len(companyChecklist))
}

func fromCounts(filledCount, total int) Score {
	value := float64(filledCount) / float64(total) * 100.0
	value = math.Round(value*100) / 100
	return Score{Value: value, Grade: GradeFor(value)}
}

// GradeFor maps a 0-100 score onto the closed letter-grade thresholds.
func GradeFor(value float64) string {
	switch {
	case value >= 90:
		return "A"
	case value >= 80:
		return "B"
	case value >= 70:
		return "C"
	case value >= 60:
		return "D"
	default:
		return "F"
	}
}

func filled(value string) bool {
	return strings.TrimSpace(value) != ""
}
