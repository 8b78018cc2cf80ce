// Package tag implements the command that prints a tag permalink.
package tag

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/gitrefs/internal/cmd/base"
)

type Command struct {
	*base.Command

	providerFlags base.ProviderFlags
}

func (c *Command) Synopsis() string {
	return "Print the permalink for a release tag"
}

func (c *Command) Help() string {
	return `Usage: gitrefs tag [options] <tag>

  Prints the hosting-provider permalink for the given release tag.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("tag", flag.ContinueOnError))
	c.providerFlags.Register(f)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if len(flags.Args()) != 1 {
		ui.Error("exactly one tag argument is required")
		return 1
	}

	parser, err := c.providerFlags.Parser()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring provider: %v", err))
		return 1
	}

	ui.Output(parser.TagURL(flags.Args()[0]))
	return 0
}
