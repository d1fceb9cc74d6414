package scraper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
)

// The same logical data appears at different nesting depths depending on
// the page template version, so both strategies probe an ordered path
// list and use the first one resolving to a non-empty array.
var (
	companyDataPaths = []string{
		"props.pageProps.companies",
		"props.pageProps.data.companies",
		"props.pageProps.startups",
		"props.serverData.companies",
	}
	jobDataPaths = []string{
		"props.pageProps.jobs",
		"props.pageProps.data.jobs",
		"props.pageProps.company.jobs",
		"props.serverData.jobs",
	}
)

type nextDataCompanyStrategy struct{}

func (*nextDataCompanyStrategy) Name() string { return "next-data" }

func (*nextDataCompanyStrategy) Extract(page *network.Page) []models.Company {
	items := nextDataItems(page.Body, companyDataPaths)

	var companies []models.Company
	for _, item := range items {
		if company, ok := companyFromJSON(item, page.URL); ok {
			companies = append(companies, company)
		}
	}
	return companies
}

type nextDataJobStrategy struct{}

func (*nextDataJobStrategy) Name() string { return "next-data" }

func (*nextDataJobStrategy) Extract(page *network.Page, company models.Company) []models.Job {
	items := nextDataItems(page.Body, jobDataPaths)

	var jobs []models.Job
	for _, item := range items {
		if job, ok := jobFromJSON(item, page.URL, company); ok {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// nextDataItems locates the single __NEXT_DATA__ script element, decodes
// its JSON document, and probes the path list for an array of objects.
// Any failure along the way yields nil, which triggers the next strategy.
func nextDataItems(body []byte, paths []string) []map[string]any {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	raw := strings.TrimSpace(doc.Find(`script#__NEXT_DATA__[type="application/json"]`).First().Text())
	if raw == "" {
		return nil
	}

	var root map[string]any
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return nil
	}

	for _, path := range paths {
		list, ok := nodeAt(root, path).([]any)
		if !ok || len(list) == 0 {
			continue
		}

		items := make([]map[string]any, 0, len(list))
		for _, element := range list {
			if item, ok := element.(map[string]any); ok {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// nodeAt walks a dotted key path through nested objects.
func nodeAt(root map[string]any, path string) any {
	var current any = root
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

// companyFromJSON maps one embedded object into the named schema. The
// verbatim object is retained as the native payload; the record is kept
// only when the name resolved to non-empty text.
func companyFromJSON(item map[string]any, sourceURL string) (models.Company, bool) {
	company := models.Company{
		SourceURL:   sourceURL,
		ExtractedAt: time.Now(),
		NativeData:  item,
	}

	company.ID = stringField(item, "id")
	company.Name = stringField(item, "name")
	company.SetSlug(stringField(item, "slug"))
	company.Logo = stringField(item, "logo")
	company.Headline = stringField(item, "headline")
	company.Location = stringField(item, "location")
	company.CompanySize = stringField(item, "companySize")
	company.Website = stringField(item, "website")
	if count, ok := intField(item, "jobsCount"); ok {
		company.TotalJobs = &count
	}

	return company, company.Name != ""
}

// jobFromJSON maps one embedded object into the named schema, carrying
// the parent company context. Kept only when the title is non-empty.
func jobFromJSON(item map[string]any, sourceURL string, company models.Company) (models.Job, bool) {
	job := models.Job{
		SourceURL:   sourceURL,
		CompanyID:   company.ID,
		CompanyName: company.Name,
		CompanySlug: company.Slug,
		ExtractedAt: time.Now(),
		NativeData:  item,
	}

	job.ID = stringField(item, "id")
	job.Title = stringField(item, "title")
	job.Description = stringField(item, "description")
	job.SetLocation(stringField(item, "location"))
	job.JobType = stringField(item, "jobType")
	job.ApplyURL = models.ApplyURLFor(company.Slug, job.ID)

	return job, job.Title != ""
}

// stringField coerces a JSON value to trimmed text. Numbers appear where
// the template serializes ids, so they are accepted too.
func stringField(item map[string]any, key string) string {
	switch value := item[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
	case json.Number:
		return value.String()
	}
	return ""
}

func intField(item map[string]any, key string) (int, bool) {
	switch value := item[key].(type) {
	case float64:
		return int(value), true
	case json.Number:
		if parsed, err := value.Int64(); err == nil {
			return int(parsed), true
		}
	}
	return 0, false
}
