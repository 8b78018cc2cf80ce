package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/gitrefs/internal/cmd/base"
	"github.com/hashicorp-forge/gitrefs/internal/cmd/commands/compare"
	"github.com/hashicorp-forge/gitrefs/internal/cmd/commands/extract"
	"github.com/hashicorp-forge/gitrefs/internal/cmd/commands/tag"
	"github.com/hashicorp-forge/gitrefs/internal/cmd/commands/versioncmd"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"extract": func() (cli.Command, error) {
			return &extract.Command{Command: b}, nil
		},
		"tag": func() (cli.Command, error) {
			return &tag.Command{Command: b}, nil
		},
		"compare": func() (cli.Command, error) {
			return &compare.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
