package cmd

import (
	"context"
	"time"

	"github.com/sucharithmenon/wellfound-scraper/internal/export"
)

type CompaniesCmd struct {
	Pages int    `arg:"" optional:"" help:"Listing pages to scrape (default from config)."`
	Out   string `help:"Write the scraped batch to a JSON file."`
}

func (cmd *CompaniesCmd) Run(cli *Context) error {
	pages := cmd.Pages
	if pages <= 0 {
		pages = cli.Config.MaxPages
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

	companies, err := scr.ScrapeCompanies(ctx, pages)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		cli.UI.Warnf("no companies found")
		return nil
	}
	cli.UI.Successf("found %d companies", len(companies))

	saved, err := db.SaveCompanies(ctx, companies)
	if err != nil {
		return err
	}

	if cmd.Out != "" {
		if err := export.WriteFile(cmd.Out, export.Batch{Companies: companies}); err != nil {
			return err
		}
		cli.UI.Infof("batch written to %s", cmd.Out)
	}

	cli.UI.Printf("companies found: %d", len(companies))
	cli.UI.Printf("companies saved: %d", saved)
	cli.UI.Printf("success rate: %.1f%%", successRate(saved, len(companies)))
	cli.UI.Printf("extraction success rate: %.1f%%", scr.Statistics().SuccessRate)
	cli.UI.Printf("duration: %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func successRate(saved, found int) float64 {
	if found == 0 {
		return 0
	}
	return float64(saved) / float64(found) * 100.0
}
