package farm

import (
	"encoding/json"
	"io"
	"log"
	"sort"
	"time"
)

// The catalog is persisted as a single JSON document, the shape written by
// the price fetcher and read by every session:
//
//	{
//	  "updatedAt": "...", "league": "...", "sourceBase": "...",
//	  "base": "Exalted Orb", "baseIcon": "...",
//	  "sections": { "currency": [ <line>... ], ... },
//	  "lines": [ <line>... ]
//	}
//
// where a line is {section, name, icon, amount, unit, unitIcon, exaltedValue}
// and amount/exaltedValue may be null.

// jline is the persisted form of a PriceRecord.
type jline struct {
	Section      string   `json:"section,omitempty"`
	Name         string   `json:"name"`
	Icon         string   `json:"icon,omitempty"`
	Amount       *float64 `json:"amount"`
	Unit         string   `json:"unit,omitempty"`
	UnitIcon     string   `json:"unitIcon,omitempty"`
	ExaltedValue *float64 `json:"exaltedValue"`
}

func (j jline) record() PriceRecord {
	return PriceRecord{
		Name:         j.Name,
		Section:      j.Section,
		Icon:         j.Icon,
		RawAmount:    AmountPtr(j.Amount),
		RawUnit:      j.Unit,
		UnitIcon:     j.UnitIcon,
		ExaltedValue: AmountPtr(j.ExaltedValue),
	}
}

func lineOf(rec PriceRecord) jline {
	return jline{
		Section:      rec.Section,
		Name:         rec.Name,
		Icon:         rec.Icon,
		Amount:       rec.RawAmount.Float(),
		Unit:         rec.RawUnit,
		UnitIcon:     rec.UnitIcon,
		ExaltedValue: rec.ExaltedValue.Float(),
	}
}

// jdocument is the persisted catalog document.
type jdocument struct {
	UpdatedAt  string             `json:"updatedAt,omitempty"`
	League     string             `json:"league,omitempty"`
	SourceBase string             `json:"sourceBase,omitempty"`
	Base       string             `json:"base,omitempty"`
	BaseIcon   string             `json:"baseIcon,omitempty"`
	Sections   map[string][]jline `json:"sections,omitempty"`
	Lines      []jline            `json:"lines"`
}

// DecodeCatalog reads a catalog document. It never fails: a malformed
// document is an empty catalog, and records without a name are skipped.
// Rates and normalization are recomputed in full on every load.
func DecodeCatalog(r io.Reader) *Catalog {
	var doc jdocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		log.Printf("malformed catalog document, starting empty: %v", err)
		return NewCatalog(nil)
	}

	lines := doc.Lines
	if len(lines) == 0 && len(doc.Sections) > 0 {
		// Older documents only carried the per-section map.
		keys := make([]string, 0, len(doc.Sections))
		for k := range doc.Sections {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			for _, l := range doc.Sections[k] {
				if l.Section == "" {
					l.Section = k
				}
				lines = append(lines, l)
			}
		}
	}

	records := make([]PriceRecord, 0, len(lines))
	for _, l := range lines {
		if l.Name == "" {
			continue
		}
		records = append(records, l.record())
	}

	c := NewCatalog(records)
	c.League = doc.League
	c.SourceBase = doc.SourceBase
	c.BaseIcon = doc.BaseIcon
	if doc.Base != "" {
		c.Base = doc.Base
	}
	if doc.UpdatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, doc.UpdatedAt); err == nil {
			c.UpdatedAt = ts
		}
	}
	return c
}

// EncodeCatalog writes the catalog document with a stable field order, so
// the prices file stays git-friendly.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	sections := make(map[string][]jline)
	lines := make([]json.Marshaler, 0, c.Len())
	for _, rec := range c.Records() {
		l := lineOf(rec)
		sections[rec.Section] = append(sections[rec.Section], l)
		lines = append(lines, orderedLine(l))
	}

	var jw jsonObjectWriter
	if !c.UpdatedAt.IsZero() {
		jw.Append("updatedAt", c.UpdatedAt.UTC().Format(time.RFC3339))
	}
	jw.Optional("league", c.League)
	jw.Optional("sourceBase", c.SourceBase)
	jw.Append("base", c.Base)
	jw.Optional("baseIcon", c.BaseIcon)
	jw.Append("sections", sections)
	jw.Append("lines", lines)

	b, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// orderedLine marshals a line with the same field order the fetcher writes.
func orderedLine(l jline) json.Marshaler {
	var jw jsonObjectWriter
	jw.Optional("section", l.Section)
	jw.Append("name", l.Name)
	jw.Optional("icon", l.Icon)
	jw.Append("amount", l.Amount)
	jw.Optional("unit", l.Unit)
	jw.Optional("unitIcon", l.UnitIcon)
	jw.Append("exaltedValue", l.ExaltedValue)
	return &jw
}
