package revisions

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

type RollbackCommand struct {
	*base.Command

	flags base.APIFlags
}

func (c *RollbackCommand) Synopsis() string {
	return "Revert a page to a prior revision"
}

func (c *RollbackCommand) Help() string {
	return `Usage: docview rollback [options] <document-id> <page-id> <revision-id>` +
		c.Flags().Help()
}

func (c *RollbackCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("rollback", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *RollbackCommand) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 3, "docview rollback <document-id> <page-id> <revision-id>")
	if !ok {
		return 1
	}

	api, err := c.NewAPI(&c.flags, nil)
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing: %v", err))
		return 1
	}
	defer api.Close()

	ctx, cancel := c.Context()
	defer cancel()

	resp, err := api.Client.RollbackPage(ctx, rest[0], rest[1], rest[2])
	if err != nil {
		ui.Error(fmt.Sprintf("error rolling back page: %v", err))
		return 1
	}

	c.Log.Debug("rolled back page", "status", resp.StatusCode)
	ui.Info(fmt.Sprintf("Page %s rolled back to revision %s", rest[1], rest[2]))
	return 0
}
