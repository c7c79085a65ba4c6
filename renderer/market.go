package renderer

import (
	"fmt"
	"strings"

	"github.com/datrise/farm"
)

// MarketMarkdown renders a browsable view of the catalog, optionally
// restricted to one section and filtered by a case-insensitive substring.
// At most limit rows are shown per section; limit <= 0 means no cap.
func MarketMarkdown(c *farm.Catalog, section, search string, limit int) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Market\n\n")
	if c.League != "" {
		fmt.Fprintf(&b, "League: %s", c.League)
		if !c.UpdatedAt.IsZero() {
			fmt.Fprintf(&b, " (prices from %s)", c.UpdatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprint(&b, "\n\n")
	}
	if c.Len() == 0 {
		fmt.Fprint(&b, "No prices loaded. Run `pfc fetch` first.\n")
		return b.String()
	}

	search = strings.ToLower(strings.TrimSpace(search))
	for _, sec := range c.Sections() {
		if section != "" && !strings.EqualFold(sec, section) {
			continue
		}
		renderSection(&b, sec, c.Section(sec), search, limit)
	}

	return b.String()
}

func renderSection(b *strings.Builder, key string, records []farm.PriceRecord, search string, limit int) {
	shown := 0
	for _, rec := range records {
		if search != "" && !strings.Contains(strings.ToLower(rec.Name), search) {
			continue
		}
		if shown == 0 {
			fmt.Fprintf(b, "## %s\n\n", key)
			fmt.Fprintln(b, "| Item | Value |")
			fmt.Fprintln(b, "|:---|---:|")
		}
		fmt.Fprintf(b, "| %s | %s |\n", rec.Name, rec.Value())
		shown++
		if limit > 0 && shown == limit {
			break
		}
	}
	if shown > 0 {
		fmt.Fprintln(b)
	}
}
