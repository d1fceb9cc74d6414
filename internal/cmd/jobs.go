package cmd

import (
	"context"
	"time"

	"github.com/sucharithmenon/wellfound-scraper/internal/export"
	"github.com/sucharithmenon/wellfound-scraper/internal/models"
)

type JobsCmd struct {
	Slug string `arg:"" help:"Company slug, e.g. openai."`
	Out  string `help:"Write the scraped batch to a JSON file."`
}

func (cmd *JobsCmd) Run(cli *Context) error {
	ctx := context.Background()
	start := time.Now()

	db, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	scr, err := cli.newScraper()
	if err != nil {
		return err
	}

	company := models.Company{Name: cmd.Slug}
	company.SetSlug(cmd.Slug)

	jobs, err := scr.ScrapeCompanyJobs(ctx, company)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		cli.UI.Warnf("no jobs found for company %s", cmd.Slug)
		return nil
	}
	cli.UI.Successf("found %d jobs", len(jobs))

	saved, err := db.SaveJobs(ctx, jobs)
	if err != nil {
		return err
	}

	if cmd.Out != "" {
		if err := export.WriteFile(cmd.Out, export.Batch{Jobs: jobs}); err != nil {
			return err
		}
		cli.UI.Infof("batch written to %s", cmd.Out)
	}

	cli.UI.Printf("jobs found: %d", len(jobs))
	cli.UI.Printf("jobs saved: %d", saved)
	cli.UI.Printf("success rate: %.1f%%", successRate(saved, len(jobs)))
	cli.UI.Printf("average quality score: %.1f%%", averageScore(jobs))
	cli.UI.Printf("duration: %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func averageScore(jobs []models.Job) float64 {
	if len(jobs) == 0 {
		return 0
	}
	sum := 0.0
	for _, job := range jobs {
		sum += job.Score
	}
	return sum / float64(len(jobs))
}
