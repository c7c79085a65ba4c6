package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
	"github.com/datrise/farm/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the session totals and loot breakdown" }
func (*reportCmd) Usage() string {
	return `pfc report

  Replays the session against the current catalog and prints the invested,
  looted and gain totals with the per-line breakdown.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		return subcommands.ExitFailure
	}

	report := farm.NewSessionReport(session, LoadCatalog())
	printMarkdown(renderer.SessionMarkdown(report))
	return subcommands.ExitSuccess
}
