package cmd

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/sucharithmenon/wellfound-scraper/internal/config"
	"github.com/sucharithmenon/wellfound-scraper/internal/network"
	"github.com/sucharithmenon/wellfound-scraper/internal/ratelimit"
	"github.com/sucharithmenon/wellfound-scraper/internal/scraper"
	"github.com/sucharithmenon/wellfound-scraper/internal/store"
	"github.com/sucharithmenon/wellfound-scraper/internal/ui"
)

type Context struct {
	Out       io.Writer
	Err       io.Writer
	UI        *ui.UI
	Config    config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Verbose   bool
	Version   string
}

// newScraper wires the shared rate gate, the fetch client, and the
// extraction engine. A non-positive rate is a construction-time error.
func (c *Context) newScraper() (*scraper.Scraper, error) {
	gate, err := ratelimit.New(c.Config.RateLimit)
	if err != nil {
		return nil, err
	}

	client, err := network.NewClient(network.DefaultTimeouts())
	if err != nil {
		return nil, err
	}

	return scraper.New(client, gate, c.Logger), nil
}

func (c *Context) openStore(ctx context.Context) (*store.Store, error) {
	if c.Config.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return store.Connect(ctx, c.Config.DatabaseURL)
}
