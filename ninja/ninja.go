// Package ninja fetches PoE2 economy data from poe.ninja and turns it into
// a farm.Catalog. It is a best-effort scraper: a section that cannot be
// fetched or parsed is skipped and logged, never fatal.
package ninja

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/datrise/farm"
)

const baseURL = "https://poe.ninja"

// maxLines caps the rows kept per section, enough for any section that
// matters and a guard against pathological pages.
const maxLines = 300

// section is one economy category, with URL slug fallbacks because the site
// renamed several of them over time.
type section struct {
	key   string
	slugs []string
}

var sections = []section{
	{"currency", []string{"currency"}},
	{"fragments", []string{"fragments"}},
	{"abyssalBones", []string{"abyssal-bones", "abyssalbones"}},
	{"uncutGems", []string{"uncut-gems", "uncutgems"}},
	{"lineageGems", []string{"lineage-support-gems", "lineagegems"}},
	{"essences", []string{"essences"}},
	{"soulCores", []string{"soul-cores", "soulcores"}},
	{"idols", []string{"idols"}},
	{"runes", []string{"runes"}},
	{"omens", []string{"omens"}},
	{"expedition", []string{"expedition"}},
	{"liquidEmotions", []string{"liquid-emotions", "liquidemotions"}},
	{"catalyst", []string{"breach-catalyst", "catalysts"}},
}

// Client fetches economy data for one league.
type Client struct {
	league string
	http   *resty.Client
}

// NewClient returns a client for the given league ("standard" when empty).
func NewClient(league string) *Client {
	if league == "" {
		league = "standard"
	}
	return &Client{
		league: strings.ToLower(league),
		http: resty.New().
			SetTransport(&diskCache{base: http.DefaultTransport}).
			SetBaseURL(baseURL).
			SetRetryCount(2).
			SetRetryWaitTime(2 * time.Second).
			SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120 Safari/537.36"),
	}
}

// League returns the league the client fetches.
func (c *Client) League() string { return c.league }

// Fetch retrieves every section and builds the catalog. Sections that fail
// are skipped; an all-failed fetch yields an empty catalog, consistent with
// the loader's degraded mode.
func (c *Client) Fetch(ctx context.Context) (*farm.Catalog, error) {
	var records []farm.PriceRecord
	var baseIcon string

	for _, sec := range sections {
		lines, err := c.fetchSection(ctx, sec)
		if err != nil {
			log.Printf("[%s] SKIP: %v", sec.key, err)
			continue
		}
		log.Printf("[%s] OK -> %d lines", sec.key, len(lines))
		for _, rec := range lines {
			if baseIcon == "" && strings.EqualFold(rec.Name, farm.ReferenceUnit) {
				baseIcon = rec.Icon
			}
			records = append(records, rec)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	catalog := farm.NewCatalog(records)
	catalog.League = c.league
	catalog.SourceBase = baseURL
	catalog.BaseIcon = baseIcon
	catalog.UpdatedAt = time.Now()
	return catalog, nil
}

// fetchSection tries each slug of the section, the JSON overview endpoint
// first and the rendered economy table as a fallback.
func (c *Client) fetchSection(ctx context.Context, sec section) ([]farm.PriceRecord, error) {
	var lastErr error
	for _, slug := range sec.slugs {
		lines, err := c.fetchOverview(ctx, sec.key, slug)
		if err == nil && len(lines) > 0 {
			return lines, nil
		}
		if err != nil {
			lastErr = err
		}

		lines, err = c.fetchTable(ctx, sec.key, slug)
		if err == nil && len(lines) > 0 {
			return lines, nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no rows in any of %v", sec.slugs)
	}
	return nil, lastErr
}

// fetchOverview queries the JSON overview endpoint for one section slug.
func (c *Client) fetchOverview(ctx context.Context, key, slug string) ([]farm.PriceRecord, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("leagueName", c.league).
		SetQueryParam("categoryApiId", slug).
		Get("/poe2/api/economy/temp/overview")
	if err != nil {
		return nil, err
	}
	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("HTTP %d on overview %q", res.StatusCode(), slug)
	}
	return parseOverview(key, res.Body())
}

// fetchTable downloads the rendered economy page for one section slug.
func (c *Client) fetchTable(ctx context.Context, key, slug string) ([]farm.PriceRecord, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/poe2/economy/%s/%s", c.league, slug))
	if err != nil {
		return nil, err
	}
	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("HTTP %d on page %q", res.StatusCode(), slug)
	}
	return ParseEconomyTable(key, strings.NewReader(string(res.Body())))
}
