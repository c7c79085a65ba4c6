package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/datrise/farm/renderer"
)

// marketCmd holds the flags for the 'market' subcommand.
type marketCmd struct {
	section string
	search  string
	limit   int
}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "browse the loaded catalog" }
func (*marketCmd) Usage() string {
	return `pfc market [-section <section>] [-search <text>] [-n <rows>]

  Prints the loaded catalog section by section, each item with its exalted
  value.
`
}

func (c *marketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.section, "section", "", "Restrict the output to one section")
	f.StringVar(&c.search, "search", "", "Keep only items whose name contains this text")
	f.IntVar(&c.limit, "n", 300, "Rows shown per section, 0 for all")
}

func (c *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MarketMarkdown(LoadCatalog(), c.section, c.search, c.limit))
	return subcommands.ExitSuccess
}
