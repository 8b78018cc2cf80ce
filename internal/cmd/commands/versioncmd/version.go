// Package versioncmd implements the version command.
package versioncmd

import (
	"fmt"

	"github.com/hashicorp-forge/gitrefs/internal/cmd/base"
	"github.com/hashicorp-forge/gitrefs/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the gitrefs version"
}

func (c *Command) Help() string {
	return "Usage: gitrefs version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("gitrefs %s", version.Version))
	return 0
}
