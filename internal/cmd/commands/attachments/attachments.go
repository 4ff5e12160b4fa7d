package attachments

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags base.APIFlags
}

func (c *Command) Synopsis() string {
	return "List a document's attachments"
}

func (c *Command) Help() string {
	return `Usage: docview attachments [options] <document-id>` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("attachments", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 1, "docview attachments <document-id>")
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

	attachments, err := api.Client.GetAttachments(ctx, rest[0])
	if err != nil {
		ui.Error(fmt.Sprintf("error loading attachments: %v", err))
		return 1
	}

	if done, err := c.Structured(c.flags.Format, attachments); err != nil {
		ui.Error(err.Error())
		return 1
	} else if done {
		return 0
	}

	if len(attachments) == 0 {
		ui.Info("No attachments")
		return 0
	}
	for _, a := range attachments {
		ui.Output(fmt.Sprintf("%s\t%s", a.ID, a.Filename))
	}
	return 0
}
