package farm

import (
	"strings"
	"time"
)

// PriceRecord is one priced item of a catalog load. Records are constructed
// once per load, recomputed in full on every reload, and never mutated
// incrementally.
type PriceRecord struct {
	Name     string
	Section  string
	Icon     string
	RawUnit  string
	UnitIcon string
	// RawAmount is the scraped quantity denominated in RawUnit.
	RawAmount Amount
	// ExaltedValue is the value in the reference unit. It is Missing on raw
	// scraped records and always valid and non-negative after normalization.
	ExaltedValue Amount
}

// Value returns the normalized exalted value of the record.
func (r PriceRecord) Value() Value {
	return Exalted(r.ExaltedValue.orZero())
}

// Catalog is the full set of priced items loaded for one session, plus the
// conversion rates derived from its anchor records. It is immutable once
// built and replaced wholesale on reload.
type Catalog struct {
	UpdatedAt  time.Time
	League     string
	SourceBase string
	Base       string
	BaseIcon   string

	records []PriceRecord
	index   map[string]*PriceRecord
	rates   ConversionRates
}

// NewCatalog builds a catalog from raw records: it derives the conversion
// rates, normalizes every record and indexes them by case-insensitive name.
// Duplicate names collapse to the last-seen record.
func NewCatalog(records []PriceRecord) *Catalog {
	rates := ComputeRates(records)
	c := &Catalog{
		Base:    ReferenceUnit,
		records: Normalize(records, rates),
		index:   make(map[string]*PriceRecord, len(records)),
		rates:   rates,
	}
	for i := range c.records {
		rec := &c.records[i]
		if rec.Section == "" {
			rec.Section = DefaultSection
		}
		c.index[strings.ToLower(rec.Name)] = rec
	}
	return c
}

// Lookup finds a record by case-insensitive name. A miss is a normal
// typing-in-progress state, not a failure.
func (c *Catalog) Lookup(name string) (*PriceRecord, bool) {
	rec, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// Records returns all records in load order.
func (c *Catalog) Records() []PriceRecord { return c.records }

// Rates returns the conversion rates derived for this load.
func (c *Catalog) Rates() ConversionRates { return c.rates }

func (c *Catalog) Len() int { return len(c.records) }

// Section returns the records tagged with the given section, in load order.
func (c *Catalog) Section(key string) []PriceRecord {
	var out []PriceRecord
	for _, rec := range c.records {
		if rec.Section == key {
			out = append(out, rec)
		}
	}
	return out
}

// Sections returns the distinct section tags in first-seen order.
func (c *Catalog) Sections() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range c.records {
		if _, ok := seen[rec.Section]; ok {
			continue
		}
		seen[rec.Section] = struct{}{}
		out = append(out, rec.Section)
	}
	return out
}
