package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
	"github.com/hashicorp-forge/docview/internal/cmd/commands/attachments"
	"github.com/hashicorp-forge/docview/internal/cmd/commands/document"
	"github.com/hashicorp-forge/docview/internal/cmd/commands/pages"
	"github.com/hashicorp-forge/docview/internal/cmd/commands/revisions"
	"github.com/hashicorp-forge/docview/internal/cmd/commands/version"
)

// Commands is the mapping of all available docview commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"attachments": func() (cli.Command, error) {
			return &attachments.Command{Command: b}, nil
		},
		"diff": func() (cli.Command, error) {
			return &revisions.DiffCommand{Command: b}, nil
		},
		"document": func() (cli.Command, error) {
			return &document.Command{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &document.OpenCommand{Command: b}, nil
		},
		"pages": func() (cli.Command, error) {
			return &pages.Command{Command: b}, nil
		},
		"revisions": func() (cli.Command, error) {
			return &revisions.Command{Command: b}, nil
		},
		"rollback": func() (cli.Command, error) {
			return &revisions.RollbackCommand{Command: b}, nil
		},
		"targets": func() (cli.Command, error) {
			return &pages.TargetsCommand{Command: b}, nil
		},
		"toc": func() (cli.Command, error) {
			return &pages.TOCCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
