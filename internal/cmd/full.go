package cmd

import (
	"context"
	"time"

	"github.com/sucharithmenon/wellfound-scraper/internal/export"
	"github.com/sucharithmenon/wellfound-scraper/internal/scraper"
)

type FullCmd struct {
	Pages int    `arg:"" optional:"" help:"Listing pages to scrape before the job phase (default 20)."`
	Out   string `help:"Write the scraped batch to a JSON file."`
}

func (cmd *FullCmd) Run(cli *Context) error {
	pages := cmd.Pages
	if pages <= 0 {
		pages = 2 * cli.Config.MaxPages
	}

	ctx := context.Background()
	start := time.Now()

	db, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	cli.UI.Successf("database connection successful")

	scr, err := cli.newScraper()
	if err != nil {
		return err
	}

	cli.UI.Infof("phase 1: scraping companies")
	companies, err := scr.ScrapeCompanies(ctx, pages)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		cli.UI.Warnf("no companies found")
		return nil
	}

	savedCompanies, err := db.SaveCompanies(ctx, companies)
	if err != nil {
		return err
	}
	cli.UI.Successf("saved %d of %d companies", savedCompanies, len(companies))

	cli.UI.Infof("phase 2: scraping jobs for %d companies", len(companies))
	orchestrator := scraper.NewOrchestrator(
		scr,
		cli.Config.Concurrency,
		time.Duration(cli.Config.BatchTimeoutMinutes)*time.Minute,
		cli.Logger,
	)
	batch := orchestrator.Run(ctx, companies)

	savedJobs := 0
	if len(batch.Jobs) > 0 {
		savedJobs, err = db.SaveJobs(ctx, batch.Jobs)
		if err != nil {
			return err
		}
	}

	if cmd.Out != "" {
		if err := export.WriteFile(cmd.Out, export.Batch{Companies: companies, Jobs: batch.Jobs}); err != nil {
			return err
		}
		cli.UI.Infof("batch written to %s", cmd.Out)
	}

	for _, targetErr := range batch.Errors {
		cli.UI.Warnf("failed: %s: %v", targetErr.Company.Name, targetErr.Err)
	}

	cli.UI.Printf("companies found: %d", len(companies))
	cli.UI.Printf("companies saved: %d", savedCompanies)
	cli.UI.Printf("jobs found: %d", len(batch.Jobs))
	cli.UI.Printf("jobs saved: %d", savedJobs)
	cli.UI.Printf("targets failed: %d", len(batch.Errors))
	cli.UI.Printf("success rate: %.1f%%", successRate(len(companies)-len(batch.Errors), len(companies)))
	if len(batch.Jobs) > 0 {
		cli.UI.Printf("average quality score: %.1f%%", averageScore(batch.Jobs))
	}
	cli.UI.Printf("duration: %s", time.Since(start).Round(time.Millisecond))
	return nil
}
