package pages

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

type TargetsCommand struct {
	*base.Command

	flags base.APIFlags
}

func (c *TargetsCommand) Synopsis() string {
	return "List documents pages can be copied or moved to"
}

func (c *TargetsCommand) Help() string {
	return `Usage: docview targets [options]` +
		c.Flags().Help()
}

func (c *TargetsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("targets", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *TargetsCommand) Run(args []string) int {
	ui := c.UI

	if _, ok := c.ParseArgs(c.Flags(), args, 0, "docview targets"); !ok {
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

	docs, err := api.Client.GetPageMoveCopyTargets(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading targets: %v", err))
		return 1
	}

	if done, err := c.Structured(c.flags.Format, docs); err != nil {
		ui.Error(err.Error())
		return 1
	} else if done {
		return 0
	}

	for _, d := range docs {
		ui.Output(fmt.Sprintf("%s\t%s", d.ID, d.Title))
	}
	return 0
}
