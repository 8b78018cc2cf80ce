// Package base carries the state shared by all CLI commands.
package base

import (
	"bytes"
	"flag"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every CLI command and provides the shared logger
// and UI.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// FlagSet wraps flag.FlagSet with help rendering suitable for embedding in
// a command's Help output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps a standard flag set. The wrapped set's usage output is
// suppressed; commands render flag help through Help instead.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	fs.Usage = func() {}
	return &FlagSet{FlagSet: fs}
}

// Help returns the flag usage block for the set, or an empty string when
// the set declares no flags.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nFlags:\n\n" + buf.String()
}
