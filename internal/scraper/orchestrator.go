package scraper

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
)

const (
	DefaultConcurrency  = 3
	DefaultBatchTimeout = 30 * time.Minute
)

// JobSource produces the postings for one company. *Scraper implements it.
type JobSource interface {
	ScrapeCompanyJobs(ctx context.Context, company models.Company) ([]models.Job, error)
}

// TargetError records one company whose jobs could not be scraped.
type TargetError struct {
	Company models.Company
	Err     error
}

// BatchResult aggregates one orchestrator run. Partial success is the
// expected steady state: Jobs and Errors are both populated when some
// targets fail.
type BatchResult struct {
	Jobs   []models.Job
	Errors []TargetError
}

// Orchestrator fans a finite company list out to a bounded worker pool.
// Throughput is still governed by the source's shared rate gate, so the
// ceiling only controls how much network wait overlaps.
type Orchestrator struct {
	source      JobSource
	concurrency int
	timeout     time.Duration
	log         zerolog.Logger
}

func NewOrchestrator(source JobSource, concurrency int, timeout time.Duration, log zerolog.Logger) *Orchestrator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if timeout <= 0 {
		timeout = DefaultBatchTimeout
	}
	return &Orchestrator{
		source:      source,
		concurrency: concurrency,
		timeout:     timeout,
		log:         log,
	}
}

// Run processes every company and returns accumulated jobs plus
// per-target errors. One target's failure never cancels its siblings;
// only the batch timeout does, and results gathered up to that point are
// still returned. Cancellation is checked at the fetch boundaries: an
// exchange already in flight is abandoned to its own request deadline and
// its result dropped.
func (o *Orchestrator) Run(ctx context.Context, companies []models.Company) BatchResult {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	targets := make(chan models.Company)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		collected BatchResult
	)

	for w := 0; w < o.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for company := range targets {
				if err := ctx.Err(); err != nil {
					mu.Lock()
					collected.Errors = append(collected.Errors, TargetError{Company: company, Err: err})
					mu.Unlock()
					continue
				}

				jobs, err := o.source.ScrapeCompanyJobs(ctx, company)
				if ctx.Err() != nil && err != nil {
					err = ctx.Err()
				}

				mu.Lock()
				if err != nil {
					collected.Errors = append(collected.Errors, TargetError{Company: company, Err: err})
				} else {
					collected.Jobs = append(collected.Jobs, jobs...)
				}
				mu.Unlock()

				if err != nil {
					o.log.Warn().Err(err).Str("company", company.Name).Msg("target failed")
				}
			}
		}()
	}

	for _, company := range companies {
		targets <- company
	}
	close(targets)
	wg.Wait()

	o.log.Info().
		Int("targets", len(companies)).
		Int("jobs", len(collected.Jobs)).
		Int("failed", len(collected.Errors)).
		Msg("batch complete")
	return collected
}
