package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
	"github.com/datrise/farm/ninja"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	league string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download current prices from poe.ninja" }
func (*fetchCmd) Usage() string {
	return `pfc fetch [-league <league>]

  Downloads the economy snapshot for the league and writes it to the prices
  file. Sections that cannot be fetched are skipped.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.league, "league", "standard", "League to fetch prices for")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := ninja.NewClient(c.league)
	catalog, err := client.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}
	if catalog.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no prices fetched, keeping the existing prices file.")
		return subcommands.ExitFailure
	}

	if err := farm.SaveCatalog(*pricesFile, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving prices file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched %d prices for league %q into %s\n", catalog.Len(), client.League(), *pricesFile)
	return subcommands.ExitSuccess
}
