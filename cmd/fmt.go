package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the session file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pfc fmt

  Replays the session file and writes it back in canonical JSONL form: one
  invest command followed by the surviving loot lines, drops applied.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := LoadSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load session: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := farm.SaveSession(*sessionFile, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted session file %s.\n", *sessionFile)
	return subcommands.ExitSuccess
}
