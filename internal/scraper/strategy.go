// Package scraper extracts structured company and job records from
// Wellfound pages and drives the fetch pipeline across them.
//
// Pages render in two shapes: full server-embedded state in a
// __NEXT_DATA__ script, or client-hydratable placeholders where only the
// DOM skeleton is present. Extraction therefore runs an ordered strategy
// list and short-circuits on the first strategy producing at least one
// valid record. Failures inside a strategy (malformed JSON, absent script
// tag, no selector match) are empty results, never errors.
package scraper

import (
	"github.com/rs/zerolog"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
)

// CompanyStrategy is one self-contained way to extract company records
// from a listing page.
type CompanyStrategy interface {
	Name() string
	Extract(page *network.Page) []models.Company
}

// JobStrategy is one self-contained way to extract job records from a
// company jobs page. The company carries the parent context known before
// the fetch.
type JobStrategy interface {
	Name() string
	Extract(page *network.Page, company models.Company) []models.Job
}

// Engine runs the strategy lists in order; the first strategy yielding a
// non-empty result wins and later strategies are not attempted.
type Engine struct {
	companyStrategies []CompanyStrategy
	jobStrategies     []JobStrategy
	log               zerolog.Logger
}

func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		companyStrategies: []CompanyStrategy{
			&nextDataCompanyStrategy{},
			&domCompanyStrategy{},
		},
		jobStrategies: []JobStrategy{
			&nextDataJobStrategy{},
			&domJobStrategy{},
		},
		log: log,
	}
}

// ExtractCompanies returns the first non-empty strategy result, or an
// empty slice when no strategy matches.
func (e *Engine) ExtractCompanies(page *network.Page) []models.Company {
	for _, strategy := range e.companyStrategies {
		companies := strategy.Extract(page)
		if len(companies) > 0 {
			e.log.Debug().
				Str("strategy", strategy.Name()).
				Int("count", len(companies)).
				Str("url", page.URL).
				Msg("extracted companies")
			return companies
		}
	}
	return nil
}

// ExtractJobs returns the first non-empty strategy result, or an empty
// slice when no strategy matches.
func (e *Engine) ExtractJobs(page *network.Page, company models.Company) []models.Job {
	for _, strategy := range e.jobStrategies {
		jobs := strategy.Extract(page, company)
		if len(jobs) > 0 {
			e.log.Debug().
				Str("strategy", strategy.Name()).
				Int("count", len(jobs)).
				Str("url", page.URL).
				Msg("extracted jobs")
			return jobs
		}
	}
	return nil
}
