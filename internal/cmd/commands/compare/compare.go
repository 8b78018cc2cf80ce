// Package compare implements the command that prints a comparison URL.
package compare

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
	return "Print the URL comparing two revisions or tags"
}

func (c *Command) Help() string {
	return `Usage: gitrefs compare [options] <base> <target>

  Prints the hosting-provider URL comparing two revisions or tags, in the
  same format as commit-range references found in text.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("compare", flag.ContinueOnError))
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

	if len(flags.Args()) != 2 {
		ui.Error("exactly two arguments are required: <base> <target>")
		return 1
	}

	parser, err := c.providerFlags.Parser()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring provider: %v", err))
		return 1
	}

	ui.Output(parser.CompareURL(flags.Args()[0], flags.Args()[1]))
	return 0
}
