package cmd

import (
	"context"
	"flag"
	"io"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	quantity float64
	cost     float64
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record the investment for this session" }
func (*investCmd) Usage() string {
	return `pfc invest -n <maps> -cost <exalted>

  Records the number of maps run and the unit cost in exalted. The last
  invest command in the session wins.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.quantity, "n", 10, "Number of maps")
	f.Float64Var(&c.cost, "cost", 0, "Cost of one map, in exalted")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quantity := farm.QuantityOf(c.quantity)
	cost := farm.Exalted(farm.QuantityOf(c.cost).Decimal())
	return AppendCommand(func(w io.Writer) error {
		return farm.EncodeInvest(w, quantity, cost)
	})
}
