package cmd

import "context"

type TestDBCmd struct{}

func (cmd *TestDBCmd) Run(cli *Context) error {
	ctx := context.Background()

	db, err := cli.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		return err
	}
	cli.UI.Successf("database connection successful")
	return nil
}
