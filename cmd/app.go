// Package cmd implements the CLI application to track farming sessions.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/datrise/farm"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "prices")
	c.Register(&marketCmd{}, "prices")

	c.Register(&investCmd{}, "session")
	c.Register(&lootCmd{}, "session")
	c.Register(&manualCmd{}, "session")
	c.Register(&dropCmd{}, "session")
	c.Register(&resetCmd{}, "session")
	c.Register(&reportCmd{}, "session")
	c.Register(&fmtCmd{}, "session")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var pricesFile = flag.String("prices-file", "prices.json", "Path to the prices file (JSON format)")
var sessionFile = flag.String("session-file", "session.jsonl", "Path to the session ledger file (JSONL format)")

// LoadCatalog loads the app prices file. A missing or bad file is an empty
// catalog, so this never fails.
func LoadCatalog() *farm.Catalog {
	return farm.LoadCatalog(*pricesFile)
}

// LoadSession replays the app session file.
func LoadSession() (*farm.Session, error) {
	return farm.LoadSession(*sessionFile)
}

// AppendCommand appends a single command into the app session file.
func AppendCommand(encode func(io.Writer) error) subcommands.ExitStatus {
	filename := *sessionFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to session file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended command to %s\n", filename)
	return subcommands.ExitSuccess
}
