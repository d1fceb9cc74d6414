package scraper

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
	"github.com/sucharithmenon/wellfound-scraper/internal/quality"
	"github.com/sucharithmenon/wellfound-scraper/internal/ratelimit"
)

// Fetcher issues one GET and returns the page body or a typed failure.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*network.Page, error)
}

// Scraper walks Wellfound pages, extracts records through the engine,
// and attaches quality scores. Every fetch is admitted through the shared
// rate gate, so the aggregate request rate stays at the configured limit
// no matter how many workers call in concurrently.
type Scraper struct {
	fetcher Fetcher
	gate    *ratelimit.Limiter
	engine  *Engine
	log     zerolog.Logger

	totalRequests         atomic.Int64
	successfulExtractions atomic.Int64
	failedExtractions     atomic.Int64
}

func New(fetcher Fetcher, gate *ratelimit.Limiter, log zerolog.Logger) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		gate:    gate,
		engine:  NewEngine(log),
		log:     log,
	}
}

// ScrapeCompanies walks the startups directory page by page, stopping at
// maxPages or at the first page that yields zero records. A failed page
// is counted and skipped; it does not abort the walk.
func (s *Scraper) ScrapeCompanies(ctx context.Context, maxPages int) ([]models.Company, error) {
	s.log.Info().Int("max_pages", maxPages).Msg("starting company scrape")

	var all []models.Company
	for page := 1; page <= maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		s.gate.Acquire()

		url := fmt.Sprintf("%s/startups?page=%d", models.BaseURL, page)
		companies, err := s.extractCompaniesPage(ctx, url)
		if err != nil {
			s.log.Error().Err(err).Int("page", page).Msg("company page failed")
			continue
		}

		if len(companies) == 0 {
			s.log.Info().Int("page", page).Msg("no more companies, stopping")
			break
		}

		all = append(all, companies...)
		s.log.Info().
			Int("page", page).
			Int("found", len(companies)).
			Int("total", len(all)).
			Msg("company page done")
	}

	return all, nil
}

func (s *Scraper) extractCompaniesPage(ctx context.Context, url string) ([]models.Company, error) {
	s.totalRequests.Add(1)

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.failedExtractions.Add(1)
		return nil, err
	}

	companies := s.engine.ExtractCompanies(page)
	if len(companies) == 0 {
		s.failedExtractions.Add(1)
		return nil, nil
	}

	for i := range companies {
		score := quality.ScoreCompany(&companies[i])
		companies[i].Score = score.Value
		companies[i].Grade = score.Grade
	}
	s.successfulExtractions.Add(1)
	return companies, nil
}

// ScrapeCompanyJobs fetches the jobs page for one company and extracts
// its postings. An empty result is legitimate, not an error.
func (s *Scraper) ScrapeCompanyJobs(ctx context.Context, company models.Company) ([]models.Job, error) {
	if company.Slug == "" {
		return nil, fmt.Errorf("scrape jobs for %q: company slug is empty", company.Name)
	}
	return s.scrapeJobs(ctx, models.BaseURL+"/company/"+company.Slug+"/jobs", company)
}

// ScrapeJobsFromURL extracts postings from a stored jobs URL, deriving
// the company context from the URL's slug.
func (s *Scraper) ScrapeJobsFromURL(ctx context.Context, jobsURL string) ([]models.Job, error) {
	slug := models.SlugFromJobsURL(jobsURL)
	if slug == "" {
		return nil, fmt.Errorf("scrape jobs: no company slug in URL %s", jobsURL)
	}

	company := models.Company{Name: slug}
	company.SetSlug(slug)
	return s.scrapeJobs(ctx, jobsURL, company)
}

func (s *Scraper) scrapeJobs(ctx context.Context, url string, company models.Company) ([]models.Job, error) {
	s.gate.Acquire()
	s.totalRequests.Add(1)

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.failedExtractions.Add(1)
		return nil, err
	}

	jobs := s.engine.ExtractJobs(page, company)
	if len(jobs) == 0 {
		s.failedExtractions.Add(1)
		s.log.Debug().Str("url", url).Msg("no jobs extracted")
		return nil, nil
	}

	for i := range jobs {
		score := quality.ScoreJob(&jobs[i])
		jobs[i].Score = score.Value
		jobs[i].Grade = score.Grade
	}
	s.successfulExtractions.Add(1)

	s.log.Info().
		Str("company", company.Name).
		Int("jobs", len(jobs)).
		Msg("jobs extracted")
	return jobs, nil
}

// Stats summarizes one scraper's request and extraction outcomes.
type Stats struct {
	TotalRequests         int64
	SuccessfulExtractions int64
	FailedExtractions     int64
	SuccessRate           float64
}

func (s *Scraper) Statistics() Stats {
	stats := Stats{
		TotalRequests:         s.totalRequests.Load(),
		SuccessfulExtractions: s.successfulExtractions.Load(),
		FailedExtractions:     s.failedExtractions.Load(),
	}
	if stats.TotalRequests > 0 {
		stats.SuccessRate = float64(stats.SuccessfulExtractions) / float64(stats.TotalRequests) * 100.0
	}
	return stats
}
