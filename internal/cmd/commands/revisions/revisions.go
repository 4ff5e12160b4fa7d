package revisions

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
	"github.com/hashicorp-forge/docview/pkg/models"
)

type Command struct {
	*base.Command

	flags base.APIFlags
}

func (c *Command) Synopsis() string {
	return "List revisions of a document or one of its pages"
}

func (c *Command) Help() string {
	return `Usage: docview revisions [options] <document-id> [page-id]

  Lists revisions across the whole document, or of a single page when a
  page id is given.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("revisions", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	rest := flags.Args()
	if len(rest) < 1 || len(rest) > 2 {
		ui.Error("Usage: docview revisions <document-id> [page-id]")
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

	var revisions []models.PageRevision
	if len(rest) == 2 {
		revisions, err = api.Client.GetPageRevisions(ctx, rest[0], rest[1])
	} else {
		revisions, err = api.Client.GetDocumentRevisions(ctx, rest[0])
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error loading revisions: %v", err))
		return 1
	}

	if done, err := c.Structured(c.flags.Format, revisions); err != nil {
		ui.Error(err.Error())
		return 1
	} else if done {
		return 0
	}

	if len(revisions) == 0 {
		ui.Info("No revisions")
		return 0
	}
	for _, r := range revisions {
		author := strings.TrimSpace(r.Firstname + " " + r.Lastname)
		if author == "" {
			author = r.Email
		}
		line := fmt.Sprintf("%s  %s  %s  %s", r.ID, r.Created.Format("2006-01-02 15:04"), r.Title, author)
		if r.Deleted {
			line += " (page deleted)"
		}
		ui.Output(line)
	}
	return 0
}
