package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
)

// resetCmd holds the flags for the 'reset' subcommand.
type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "start a fresh session" }
func (*resetCmd) Usage() string {
	return `pfc reset

  Replaces the session file with a fresh session: default investment and no
  loot lines.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := farm.SaveSession(*sessionFile, farm.NewSession()); err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting session file %q: %v\n", *sessionFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Started a fresh session in %s\n", *sessionFile)
	return subcommands.ExitSuccess
}
