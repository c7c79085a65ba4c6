package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/datrise/farm"
	"github.com/datrise/farm/agent"
	"github.com/datrise/farm/renderer"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `pfc assist [initial question]

  Starts an interactive session with the AI assistant. It can read the
  session and the catalog, and search the web for economy news.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	bookkeeper := agent.NewBookkeeper(
		func() (string, error) {
			session, err := LoadSession()
			if err != nil {
				return "", err
			}
			return renderer.SessionMarkdown(farm.NewSessionReport(session, LoadCatalog())), nil
		},
		func(section, search string) (string, error) {
			return renderer.MarketMarkdown(LoadCatalog(), section, search, 0), nil
		},
	)
	a := agent.New(os.Stdout, os.Stdin, agent.NewScout(), bookkeeper)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
