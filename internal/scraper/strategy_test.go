package scraper

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
)

// countingJobStrategy records invocations so precedence can be verified.
type countingJobStrategy struct {
	inner JobStrategy
	calls int
}

func (c *countingJobStrategy) Name() string { return c.inner.Name() }

func (c *countingJobStrategy) Extract(page *network.Page, company models.Company) []models.Job {
	c.calls++
	return c.inner.Extract(page, company)
}

func TestEngineStrategyPrecedence(t *testing.T) {
	fallback := &countingJobStrategy{inner: &domJobStrategy{}}
	engine := &Engine{
		jobStrategies: []JobStrategy{&nextDataJobStrategy{}, fallback},
		log:           zerolog.Nop(),
	}

	// Page carries both the embedded payload and matching job cards.
	page := htmlPage(`
<script id="__NEXT_DATA__" type="application/json">
{"props": {"pageProps": {"jobs": [{"id": "1", "title": "Embedded"}]}}}
</script>
<div data-test="job-card"><h3>From DOM</h3></div>`)

	jobs := engine.ExtractJobs(page, models.Company{Name: "Acme"})
	if len(jobs) != 1 || jobs[0].Title != "Embedded" {
		t.Fatalf("embedded strategy should win, got %+v", jobs)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback strategy invoked %d times, want 0", fallback.calls)
	}
}

func TestEngineFallsBackWhenEmbeddedEmpty(t *testing.T) {
	fallback := &countingJobStrategy{inner: &domJobStrategy{}}
	engine := &Engine{
		jobStrategies: []JobStrategy{&nextDataJobStrategy{}, fallback},
		log:           zerolog.Nop(),
	}

	page := htmlPage(`
<script id="__NEXT_DATA__" type="application/json">{"props": {"pageProps": {}}}</script>
<div data-test="job-card"><h3>From DOM</h3></div>`)

	jobs := engine.ExtractJobs(page, models.Company{Name: "Acme"})
	if len(jobs) != 1 || jobs[0].Title != "From DOM" {
		t.Fatalf("expected DOM fallback result, got %+v", jobs)
	}
	if fallback.calls != 1 {
		t.Fatalf("fallback strategy invoked %d times, want 1", fallback.calls)
	}
}

func TestEngineEmptyInputSafety(t *testing.T) {
	engine := NewEngine(zerolog.Nop())
	page := htmlPage(`<html><head></head><body><p>nothing to see</p></body></html>`)

	if got := engine.ExtractCompanies(page); len(got) != 0 {
		t.Fatalf("expected empty companies, got %d", len(got))
	}
	if got := engine.ExtractJobs(page, models.Company{Name: "Acme"}); len(got) != 0 {
		t.Fatalf("expected empty jobs, got %d", len(got))
	}
}
