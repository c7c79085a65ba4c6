package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
)

// manualCmd holds the flags for the 'manual' subcommand.
type manualCmd struct {
	quantity float64
	value    float64
}

func (*manualCmd) Name() string     { return "manual" }
func (*manualCmd) Synopsis() string { return "add a loot line with an explicit unit value" }
func (*manualCmd) Usage() string {
	return `pfc manual -value <exalted> [-n <quantity>] <item name>

  Appends a loot line with a hand-set unit value in exalted, for drops the
  market does not list.
`
}

func (c *manualCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.quantity, "n", 1, "Quantity looted")
	f.Float64Var(&c.value, "value", 0, "Value of one item, in exalted")
}

func (c *manualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item := strings.TrimSpace(strings.Join(f.Args(), " "))
	if item == "" {
		fmt.Fprintln(os.Stderr, "Error: an item name is required")
		return subcommands.ExitUsageError
	}

	quantity := farm.QuantityOf(c.quantity)
	value := farm.Exalted(farm.QuantityOf(c.value).Decimal())
	return AppendCommand(func(w io.Writer) error {
		return farm.EncodeManual(w, item, value, quantity)
	})
}
