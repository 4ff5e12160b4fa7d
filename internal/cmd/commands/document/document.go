package document

import (
	"flag"
	"fmt"
	"sort"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags base.APIFlags
}

func (c *Command) Synopsis() string {
	return "Show a document with its space, permissions and links"
}

func (c *Command) Help() string {
	return `Usage: docview document [options] <document-id>

  Loads the document bundle: the document, the space containing it, the
  current user's permissions and roles, and the document's links.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("document", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 1, "docview document <document-id>")
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

	bundle, err := api.Aggregator.FetchDocumentData(ctx, rest[0])
	if err != nil {
		ui.Error(fmt.Sprintf("error loading document: %v", err))
		return 1
	}

	if done, err := c.Structured(c.flags.Format, bundle); err != nil {
		ui.Error(err.Error())
		return 1
	} else if done {
		return 0
	}

	doc := bundle.Document
	ui.Output(fmt.Sprintf("Document: %s (%s)", doc.Title, doc.ID))
	if doc.Excerpt != "" {
		ui.Output(fmt.Sprintf("Excerpt:  %s", doc.Excerpt))
	}
	if !doc.Revised.IsZero() {
		ui.Output(fmt.Sprintf("Revised:  %s", doc.Revised.Format("2006-01-02 15:04")))
	}
	if bundle.Folder != nil {
		ui.Output(fmt.Sprintf("Space:    %s (%s)", bundle.Folder.Name, bundle.Folder.ID))
	} else {
		ui.Warn(fmt.Sprintf("Space:    %s (not in bundle)", doc.FolderID))
	}

	if bundle.Permissions != nil {
		ui.Output("Permissions:")
		for _, k := range sortedKeys(bundle.Permissions.Attributes) {
			ui.Output(fmt.Sprintf("  %s = %v", k, bundle.Permissions.Attributes[k]))
		}
	}

	if len(bundle.Links) > 0 {
		ui.Output("Links:")
		for _, l := range bundle.Links {
			target := l.TargetDocumentID
			if l.TargetID != "" {
				target += "/" + l.TargetID
			}
			line := fmt.Sprintf("  %s -> %s", l.LinkType, target)
			if l.Orphan {
				line += " (orphaned)"
			}
			ui.Output(line)
		}
	}

	return 0
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
