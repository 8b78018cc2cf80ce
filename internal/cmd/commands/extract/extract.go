// Package extract implements the command that scans text for references.
package extract

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hashicorp-forge/gitrefs/internal/cmd/base"
	"github.com/hashicorp-forge/gitrefs/pkg/refs"
)

type Command struct {
	*base.Command

	providerFlags base.ProviderFlags
	flagKind      string
	flagJSON      bool
}

func (c *Command) Synopsis() string {
	return "Extract hosting-provider references from text"
}

func (c *Command) Help() string {
	return `Usage: gitrefs extract [options] [file ...]

  Scans the given files (or standard input when no files are given) for
  hosting-provider references and prints each one with its resolved URL.

  The -kind selector is prefix-based: "labels" selects every label kind,
  and an empty selector runs the provider's whole grammar.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("extract", flag.ContinueOnError))

	c.providerFlags.Register(f)
	f.StringVar(
		&c.flagKind, "kind", "",
		"Reference kind selector, e.g. issues, merge_requests, labels.",
	)
	f.BoolVar(
		&c.flagJSON, "json", false,
		"Print references as a JSON array instead of text lines.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	parser, err := c.providerFlags.Parser()
	if err != nil {
		ui.Error(fmt.Sprintf("error configuring provider: %v", err))
		return 1
	}

	text, err := readInput(flags.Args())
	if err != nil {
		ui.Error(fmt.Sprintf("error reading input: %v", err))
		return 1
	}

	// Accept mergeRequests and merge-requests spellings for the kind flag.
	kind := strcase.ToSnake(c.flagKind)

	found := parser.FindRefs(kind, text)
	c.Log.Debug("extracted references",
		"provider", parser.Name(), "kind", kind, "count", len(found))

	if c.flagJSON {
		return c.printJSON(found)
	}
	for _, r := range found {
		ui.Output(r.String())
	}
	return 0
}

func (c *Command) printJSON(found []refs.Ref) int {
	type jsonRef struct {
		Text string `json:"text"`
		URL  string `json:"url"`
	}

	out := make([]jsonRef, len(found))
	for i, r := range found {
		out[i] = jsonRef{Text: r.Text(), URL: r.URL()}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding references: %v", err))
		return 1
	}
	c.UI.Output(string(data))
	return 0
}

// readInput concatenates the given files, or standard input when the list
// is empty.
func readInput(paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var parts []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}
