package cmd

import "fmt"

type VersionCmd struct{}

func (v *VersionCmd) Run(cli *Context) error {
	_, err := fmt.Fprintln(cli.Out, cli.Version)
	return err
}
