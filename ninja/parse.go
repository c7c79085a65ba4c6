package ninja

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/datrise/farm"
)

var (
	compactRe = regexp.MustCompile(`^([0-9]+(\.[0-9]+)?)(k|m)?$`)
	wikiRe    = regexp.MustCompile(`(?i)\s*WIKI\s*$`)
)

// ParseCompactNumber parses the compact figures the economy site displays,
// like "3.4k" or "1,2". Comma is accepted as decimal separator. Anything
// unparseable is a missing amount.
func ParseCompactNumber(s string) farm.Amount {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, ",", ".")
	m := compactRe.FindStringSubmatch(t)
	if m == nil {
		return farm.Missing
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return farm.Missing
	}
	switch m[3] {
	case "k":
		n *= 1000
	case "m":
		n *= 1000000
	}
	return farm.AmountOf(n)
}

// CleanName strips the trailing "WIKI" link text the site appends to item
// names, and surrounding whitespace.
func CleanName(name string) string {
	return strings.TrimSpace(wikiRe.ReplaceAllString(name, ""))
}

// normalizeURL resolves the protocol-relative and site-relative URLs found
// in scraped icon attributes.
func normalizeURL(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		return u
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return baseURL + u
	default:
		return u
	}
}
