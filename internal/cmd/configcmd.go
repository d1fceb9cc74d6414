package cmd

import (
	"fmt"
	"strings"

	"github.com/sucharithmenon/wellfound-scraper/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write a default config file."`
	Path PathConfigCmd `cmd:"" help:"Print config directory."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

func (c *InitConfigCmd) Run(cli *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		cli.UI.Infof("Config already initialized at %s", cli.ConfigDir)
		return nil
	}
	cli.UI.Infof("Created: %s", strings.Join(paths, ", "))
	return nil
}

func (c *PathConfigCmd) Run(cli *Context) error {
	_, err := fmt.Fprintln(cli.Out, cli.ConfigDir)
	return err
}
