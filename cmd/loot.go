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

// lootCmd holds the flags for the 'loot' subcommand.
type lootCmd struct {
	quantity float64
}

func (*lootCmd) Name() string     { return "loot" }
func (*lootCmd) Synopsis() string { return "add a loot line priced from the catalog" }
func (*lootCmd) Usage() string {
	return `pfc loot [-n <quantity>] <item name>

  Appends a loot line. The item is priced by case-insensitive catalog
  lookup; an unknown name prices at zero until the catalog learns it.
`
}

func (c *lootCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.quantity, "n", 1, "Quantity looted")
}

func (c *lootCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item := strings.TrimSpace(strings.Join(f.Args(), " "))
	if item == "" {
		fmt.Fprintln(os.Stderr, "Error: an item name is required")
		return subcommands.ExitUsageError
	}

	if _, ok := LoadCatalog().Lookup(item); !ok {
		fmt.Fprintf(os.Stderr, "Warning: %q is not in the catalog, it will count as zero.\n", item)
	}

	quantity := farm.QuantityOf(c.quantity)
	return AppendCommand(func(w io.Writer) error {
		return farm.EncodeLoot(w, item, quantity)
	})
}
