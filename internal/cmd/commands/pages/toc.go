package pages

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

type TOCCommand struct {
	*base.Command

	flags base.APIFlags
}

func (c *TOCCommand) Synopsis() string {
	return "Show a document's table of contents"
}

func (c *TOCCommand) Help() string {
	return `Usage: docview toc [options] <document-id>

  Lists page titles in order without fetching page content.` +
		c.Flags().Help()
}

func (c *TOCCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("toc", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *TOCCommand) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 1, "docview toc <document-id>")
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

	pages, err := api.Client.GetTableOfContents(ctx, rest[0])
	if err != nil {
		ui.Error(fmt.Sprintf("error loading table of contents: %v", err))
		return 1
	}

	if done, err := c.Structured(c.flags.Format, pages); err != nil {
		ui.Error(err.Error())
		return 1
	} else if done {
		return 0
	}

	for _, p := range pages {
		ui.Output(indent(p.Level) + p.Title)
	}
	return 0
}
