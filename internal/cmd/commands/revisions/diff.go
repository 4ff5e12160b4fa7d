package revisions

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

type DiffCommand struct {
	*base.Command

	flags base.APIFlags
}

func (c *DiffCommand) Synopsis() string {
	return "Show the diff between a revision and the current page"
}

func (c *DiffCommand) Help() string {
	return `Usage: docview diff [options] <document-id> <page-id> <revision-id>` +
		c.Flags().Help()
}

func (c *DiffCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("diff", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *DiffCommand) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 3, "docview diff <document-id> <page-id> <revision-id>")
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

	diff := api.Client.GetPageRevisionDiff(ctx, rest[0], rest[1], rest[2])
	if diff == "" {
		ui.Warn("No diff available")
		return 0
	}
	ui.Output(diff)
	return 0
}
