package pages

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
	return "List a document's pages with their review state"
}

func (c *Command) Help() string {
	return `Usage: docview pages [options] <document-id>

  Lists every page of a document in order, with pending changes and review
  flags computed for the configured user.

  Markers:
    pending    a change is pending
    review     a change is awaiting review
    rejected   a change was rejected
    mine:...   the same, for changes made by the current user
    new        a new page proposed by the current user` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("pages", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 1, "docview pages <document-id>")
	if !ok {
		return 1
	}

	api, err := c.NewAPI(&c.flags, nil)
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing: %v", err))
		return 1
	}
	defer api.Close()

	if api.Config.UserID == "" {
		ui.Warn("no user configured; user-specific flags will be unset")
	}

	ctx, cancel := c.Context()
	defer cancel()

	containers, err := api.Aggregator.FetchPages(ctx, rest[0], api.Config.UserID)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading pages: %v", err))
		return 1
	}

	if done, err := c.Structured(c.flags.Format, containers); err != nil {
		ui.Error(err.Error())
		return 1
	} else if done {
		return 0
	}

	for _, pc := range containers {
		line := fmt.Sprintf("%s%s (%s)", indent(pc.Page.Level), pc.Page.Title, pc.ID)
		if m := markers(pc); len(m) > 0 {
			line += " [" + strings.Join(m, " ") + "]"
		}
		ui.Output(line)

		for _, p := range pc.Pending {
			ui.Output(fmt.Sprintf("%s  ~ %s by %s", indent(pc.Page.Level), p.Page.Status, p.Owner))
		}
	}

	return 0
}

func indent(level int) string {
	if level <= 1 {
		return ""
	}
	return strings.Repeat("  ", level-1)
}

// markers renders the set page-level flags.
func markers(pc *models.PageContainer) []string {
	var m []string
	if pc.ChangePending {
		m = append(m, "pending")
	}
	if pc.ChangeAwaitingReview {
		m = append(m, "review")
	}
	if pc.ChangeRejected {
		m = append(m, "rejected")
	}
	if pc.UserHasChangePending {
		m = append(m, "mine:pending")
	}
	if pc.UserHasChangeAwaitingReview {
		m = append(m, "mine:review")
	}
	if pc.UserHasChangeRejected {
		m = append(m, "mine:rejected")
	}
	if pc.UserHasNewPagePending {
		m = append(m, "new")
	}
	return m
}
