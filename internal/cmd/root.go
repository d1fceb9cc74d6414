package cmd

import "github.com/alecthomas/kong"

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Companies  CompaniesCmd  `cmd:"" help:"Scrape companies from the startups directory."`
	Jobs       JobsCmd       `cmd:"" help:"Scrape jobs for one company."`
	JobsFromDB JobsFromDBCmd `cmd:"" name:"jobs-from-db" help:"Scrape jobs for companies stored in the database."`
	Full       FullCmd       `cmd:"" help:"Scrape companies, then jobs for each."`
	Stats      StatsCmd      `cmd:"" help:"Show database statistics."`
	TestDB     TestDBCmd     `cmd:"" name:"test-db" help:"Test the database connection."`
	Config     ConfigCmd     `cmd:"" help:"Manage configuration."`
	Version    VersionCmd    `cmd:"" help:"Print version."`
}

func NewCLI() *CLI {
	return &CLI{}
}
