package scraper

import (
	"bytes"
	"html"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
)

// Selector lists are probed in order and the first one matching at least
// one element wins. Attribute markers come before class names because
// class names churn more often across template revisions.
var (
	companyCardSelectors = []string{
		"[data-test='startup-card']",
		"[data-startup-id]",
		".startup-card",
		".company-card",
		".company-item",
	}
	jobCardSelectors = []string{
		"[data-test='job-card']",
		"[data-job-id]",
		".job-card",
		".job-item",
		".job-listing",
	}
)

type domCompanyStrategy struct{}

func (*domCompanyStrategy) Name() string { return "dom" }

func (*domCompanyStrategy) Extract(page *network.Page) []models.Company {
	cards := matchCards(page.Body, companyCardSelectors)

	var companies []models.Company
	for _, card := range cards {
		company := models.Company{
			SourceURL:   page.URL,
			ExtractedAt: time.Now(),
		}

		id := card.AttrOr("data-startup-id", "")
		if id == "" {
			id = card.AttrOr("data-id", "")
		}
		company.ID = id
		company.Name = cleanText(card.Find("h2, .company-name, [data-test='company-name']").First().Text())
		company.Location = cleanText(card.Find(".location, [data-test='location']").First().Text())

		if company.Name != "" {
			companies = append(companies, company)
		}
	}
	return companies
}

type domJobStrategy struct{}

func (*domJobStrategy) Name() string { return "dom" }

func (*domJobStrategy) Extract(page *network.Page, company models.Company) []models.Job {
	cards := matchCards(page.Body, jobCardSelectors)

	var jobs []models.Job
	for _, card := range cards {
		job := models.Job{
			SourceURL:   page.URL,
			CompanyID:   company.ID,
			CompanyName: company.Name,
			CompanySlug: company.Slug,
			ExtractedAt: time.Now(),
		}

		id := card.AttrOr("data-job-id", "")
		if id == "" {
			id = card.AttrOr("data-id", "")
		}
		job.ID = id
		job.Title = cleanText(card.Find("h3, .job-title, [data-test='job-title']").First().Text())
		job.SetLocation(cleanText(card.Find(".location, [data-test='location']").First().Text()))
		job.ApplyURL = models.ApplyURLFor(company.Slug, job.ID)

		if job.Title != "" {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// matchCards parses the page and returns the elements of the first
// selector that matches anything. A malformed document yields nil.
func matchCards(body []byte, selectors []string) []*goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	for _, selector := range selectors {
		matched := doc.Find(selector)
		if matched.Length() == 0 {
			continue
		}

		cards := make([]*goquery.Selection, 0, matched.Length())
		matched.Each(func(_ int, s *goquery.Selection) {
			cards = append(cards, s)
		})
		return cards
	}
	return nil
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}
