// Package renderer turns computed reports into markdown strings. It holds
// all the presentation choices so the domain package stays display-free.
package renderer

import (
	"fmt"
	"strings"

	"github.com/datrise/farm"
)

// SessionMarkdown renders the farming session report.
func SessionMarkdown(report *farm.SessionReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Farming Session\n\n")
	if report.League != "" {
		fmt.Fprintf(&b, "League: %s", report.League)
		if !report.UpdatedAt.IsZero() {
			fmt.Fprintf(&b, " (prices from %s)", report.UpdatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprint(&b, "\n\n")
	}

	fmt.Fprint(&b, "## Totals\n\n")
	fmt.Fprintln(&b, "| | Exalted | Divine |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Invested | %s | %s |\n", report.Invested.Exalted, report.Invested.Divine)
	fmt.Fprintf(&b, "| Looted | %s | %s |\n", report.Looted.Exalted, report.Looted.Divine)
	fmt.Fprintf(&b, "| **Gain** | **%s** | **%s** |\n",
		report.Gain.Exalted.SignedString(),
		report.Gain.Divine.SignedString(),
	)

	if len(report.Lines) == 0 {
		return b.String()
	}

	fmt.Fprint(&b, "\n## Loot\n\n")
	fmt.Fprintln(&b, "| # | Item | Quantity | Unit | Total |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|---:|")
	for i, line := range report.Lines {
		item := line.Item
		if !line.Matched {
			item += " (?)"
		}
		if line.Kind == farm.ManualLine {
			item += " \\*"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			i+1, item, line.Quantity, line.UnitPrice, line.Contribution)
	}

	return b.String()
}
