package cmd

import (
	"context"
	"time"

	"github.com/sucharithmenon/wellfound-scraper/internal/export"
	"github.com/sucharithmenon/wellfound-scraper/internal/scraper"
)

const defaultJobsFromDBLimit = 50

type JobsFromDBCmd struct {
	Limit int    `arg:"" optional:"" help:"How many stored companies to re-scrape (default 50)."`
	Out   string `help:"Write the scraped batch to a JSON file."`
}

func (cmd *JobsFromDBCmd) Run(cli *Context) error {
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultJobsFromDBLimit
	}

	ctx := context.Background()
	start := time.Now()

	db, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	companies, err := db.CompanyJobURLs(ctx, limit)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		cli.UI.Warnf("no stored companies to scrape")
		return nil
	}
	cli.UI.Infof("scraping jobs for %d stored companies", len(companies))

	scr, err := cli.newScraper()
	if err != nil {
		return err
	}

	orchestrator := scraper.NewOrchestrator(
		scr,
		cli.Config.Concurrency,
		time.Duration(cli.Config.BatchTimeoutMinutes)*time.Minute,
		cli.Logger,
	)
	batch := orchestrator.Run(ctx, companies)

	saved := 0
	if len(batch.Jobs) > 0 {
		saved, err = db.SaveJobs(ctx, batch.Jobs)
		if err != nil {
			return err
		}
	}

	if cmd.Out != "" {
		if err := export.WriteFile(cmd.Out, export.Batch{Jobs: batch.Jobs}); err != nil {
			return err
		}
		cli.UI.Infof("batch written to %s", cmd.Out)
	}

	for _, targetErr := range batch.Errors {
		cli.UI.Warnf("failed: %s: %v", targetErr.Company.Name, targetErr.Err)
	}

	cli.UI.Printf("companies processed: %d", len(companies))
	cli.UI.Printf("jobs found: %d", len(batch.Jobs))
	cli.UI.Printf("jobs saved: %d", saved)
	cli.UI.Printf("targets failed: %d", len(batch.Errors))
	cli.UI.Printf("success rate: %.1f%%", successRate(len(companies)-len(batch.Errors), len(companies)))
	cli.UI.Printf("duration: %s", time.Since(start).Round(time.Millisecond))
	return nil
}
