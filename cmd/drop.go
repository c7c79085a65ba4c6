package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
)

// dropCmd holds the flags for the 'drop' subcommand.
type dropCmd struct{}

func (*dropCmd) Name() string     { return "drop" }
func (*dropCmd) Synopsis() string { return "remove a loot line by its position" }
func (*dropCmd) Usage() string {
	return `pfc drop <position>

  Removes the loot line at the given 1-based position, as shown by the
  report. An out-of-range position is ignored.
`
}

func (c *dropCmd) SetFlags(f *flag.FlagSet) {}

func (c *dropCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a single 1-based position is required")
		return subcommands.ExitUsageError
	}
	position, err := strconv.Atoi(f.Arg(0))
	if err != nil || position < 1 {
		fmt.Fprintf(os.Stderr, "Error: %q is not a valid position\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	return AppendCommand(func(w io.Writer) error {
		return farm.EncodeDrop(w, position)
	})
}
