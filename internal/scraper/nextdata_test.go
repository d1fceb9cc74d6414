package scraper

import (
	"fmt"
	"testing"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
)

func nextDataPage(t *testing.T, payload string) *network.Page {
	t.Helper()
	body := fmt.Sprintf(`<!doctype html><html><head>
<script id="__NEXT_DATA__" type="application/json">%s</script>
</head><body></body></html>`, payload)
	return &network.Page{URL: "https://wellfound.com/startups?page=1", Status: 200, Body: []byte(body)}
}

func TestNextDataCompanies(t *testing.T) {
	page := nextDataPage(t, `{
	  "props": {"pageProps": {"companies": [
	    {"id": 42, "name": "Acme", "slug": "acme", "headline": "Robots",
	     "location": "Austin", "companySize": "11-50", "jobsCount": 7,
	     "fundingRounds": [{"round": "A"}]},
	    {"id": 43, "slug": "nameless"}
	  ]}}
	}`)

	companies := (&nextDataCompanyStrategy{}).Extract(page)
	if len(companies) != 1 {
		t.Fatalf("expected 1 company (nameless one gated out), got %d", len(companies))
	}

	acme := companies[0]
	if acme.ID != "42" || acme.Name != "Acme" || acme.Slug != "acme" {
		t.Fatalf("unexpected company: %+v", acme)
	}
	if acme.JobsURL != "https://wellfound.com/company/acme/jobs" {
		t.Fatalf("jobs URL not derived: %q", acme.JobsURL)
	}
	if acme.TotalJobs == nil || *acme.TotalJobs != 7 {
		t.Fatalf("total jobs not mapped: %v", acme.TotalJobs)
	}
	// Unrecognized source fields stay verbatim in the native payload.
	if _, ok := acme.NativeData["fundingRounds"]; !ok {
		t.Fatal("native payload should retain unmapped fields")
	}
}

func TestNextDataPathProbing(t *testing.T) {
	cases := []string{
		`{"props": {"pageProps": {"jobs": [{"id": "1", "title": "Engineer"}]}}}`,
		`{"props": {"pageProps": {"data": {"jobs": [{"id": "1", "title": "Engineer"}]}}}}`,
		`{"props": {"pageProps": {"company": {"jobs": [{"id": "1", "title": "Engineer"}]}}}}`,
		`{"props": {"serverData": {"jobs": [{"id": "1", "title": "Engineer"}]}}}`,
	}

	company := models.Company{ID: "9", Name: "Acme"}
	company.SetSlug("acme")

	for i, payload := range cases {
		jobs := (&nextDataJobStrategy{}).Extract(nextDataPage(t, payload), company)
		if len(jobs) != 1 {
			t.Fatalf("case %d: expected 1 job, got %d", i, len(jobs))
		}
		if jobs[0].ApplyURL != "https://wellfound.com/company/acme/jobs/1" {
			t.Fatalf("case %d: apply URL not derived: %q", i, jobs[0].ApplyURL)
		}
		if jobs[0].CompanyName != "Acme" || jobs[0].CompanyID != "9" {
			t.Fatalf("case %d: parent context not carried: %+v", i, jobs[0])
		}
	}
}

func TestNextDataFirstResolvingPathWins(t *testing.T) {
	// Both paths present: the earlier one in the probe order is used.
	page := nextDataPage(t, `{"props": {"pageProps": {
	  "jobs": [{"id": "1", "title": "From pageProps"}],
	  "data": {"jobs": [{"id": "2", "title": "From data"}]}
	}}}`)

	jobs := (&nextDataJobStrategy{}).Extract(page, models.Company{Name: "Acme"})
	if len(jobs) != 1 || jobs[0].Title != "From pageProps" {
		t.Fatalf("expected the first key path to win, got %+v", jobs)
	}
}

func TestNextDataPrimaryFieldGate(t *testing.T) {
	page := nextDataPage(t, `{"props": {"pageProps": {"jobs": [
	  {"id": "1", "description": "rich but untitled", "location": "Remote", "jobType": "full-time"},
	  {"id": "2", "title": "   "},
	  {"id": "3", "title": "Kept"}
	]}}}`)

	jobs := (&nextDataJobStrategy{}).Extract(page, models.Company{Name: "Acme"})
	if len(jobs) != 1 || jobs[0].Title != "Kept" {
		t.Fatalf("records without a non-empty title must be excluded, got %+v", jobs)
	}
}

func TestNextDataMalformedAndMissing(t *testing.T) {
	cases := []struct {
		name string
		page *network.Page
	}{
		{"malformed json", nextDataPage(t, `{"props": {`)},
		{"wrong shape", nextDataPage(t, `{"props": {"pageProps": {"jobs": {"not": "an array"}}}}`)},
		{"no script tag", &network.Page{URL: "u", Status: 200, Body: []byte(`<html><body><p>hi</p></body></html>`)}},
		{"empty array", nextDataPage(t, `{"props": {"pageProps": {"jobs": []}}}`)},
	}

	for _, tc := range cases {
		jobs := (&nextDataJobStrategy{}).Extract(tc.page, models.Company{Name: "Acme"})
		if len(jobs) != 0 {
			t.Errorf("%s: expected empty result, got %d jobs", tc.name, len(jobs))
		}
	}
}

func TestJobRemoteFlagFromLocation(t *testing.T) {
	page := nextDataPage(t, `{"props": {"pageProps": {"jobs": [
	  {"id": "1", "title": "SRE", "location": "Remote - US"},
	  {"id": "2", "title": "Chef", "location": "Brooklyn"}
	]}}}`)

	jobs := (&nextDataJobStrategy{}).Extract(page, models.Company{Name: "Acme"})
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].RemoteOK == nil || !*jobs[0].RemoteOK {
		t.Fatal("remote location should set RemoteOK true")
	}
	if jobs[1].RemoteOK == nil || *jobs[1].RemoteOK {
		t.Fatal("on-site location should set RemoteOK false")
	}
}
