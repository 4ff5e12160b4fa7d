package document

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
	"github.com/hashicorp-forge/docview/pkg/client"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

type OpenCommand struct {
	*base.Command

	flags base.APIFlags
}

func (c *OpenCommand) Synopsis() string {
	return "Open a document in the web editor"
}

func (c *OpenCommand) Help() string {
	return `Usage: docview open [options] <document-id>

  Opens the document in the default browser. If the document cannot be
  loaded the editor's not-found page is opened instead. Requires web_url
  in the config file.` +
		c.Flags().Help()
}

func (c *OpenCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))
	base.AddAPIFlags(f, &c.flags)
	return f
}

func (c *OpenCommand) Run(args []string) int {
	ui := c.UI

	rest, ok := c.ParseArgs(c.Flags(), args, 1, "docview open <document-id>")
	if !ok {
		return 1
	}

	var webURL string
	nav := client.NavigatorFunc(func(_ context.Context, in client.Intent) {
		target := webURL + in.Route
		if err := openURL(target); err != nil {
			c.Log.Warn("error opening browser", "url", target, "error", err)
		}
	})

	api, err := c.NewAPI(&c.flags, nav)
	if err != nil {
		ui.Error(fmt.Sprintf("error initializing: %v", err))
		return 1
	}
	defer api.Close()

	webURL = strings.TrimRight(api.Config.WebURL, "/")
	if webURL == "" {
		ui.Error("web_url must be set in the config file")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	doc, err := api.Client.GetDocument(ctx, rest[0])
	if err != nil {
		ui.Error(fmt.Sprintf("error loading document: %v", err))
		return 1
	}

	target := webURL + "/d/" + url.PathEscape(doc.ID)
	if doc.Slug != "" {
		target += "/" + url.PathEscape(doc.Slug)
	}

	ui.Info(fmt.Sprintf("Opening %s", target))
	if err := openURL(target); err != nil {
		ui.Error(fmt.Sprintf("error opening browser: %v", err))
		return 1
	}

	return 0
}
