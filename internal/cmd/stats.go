package cmd

import "context"

type StatsCmd struct{}

func (cmd *StatsCmd) Run(cli *Context) error {
	ctx := context.Background()

	db, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.Stats(ctx)
	if err != nil {
		return err
	}

	cli.UI.Printf("companies stored: %d", stats.TotalCompanies)
	cli.UI.Printf("jobs stored: %d", stats.TotalJobs)
	if stats.QualityRecorded {
		cli.UI.Printf("average quality score: %.1f%%", stats.AverageQuality)
	} else {
		cli.UI.Printf("average quality score: n/a")
	}
	return nil
}
