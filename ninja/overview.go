package ninja

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/datrise/farm"
)

// parseOverview extracts price lines from the JSON overview payload. The
// payload shape has changed more than once, so fields are read defensively
// through a few known aliases rather than a rigid struct.
func parseOverview(sectionKey string, body []byte) ([]farm.PriceRecord, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("overview is not json: %w", err)
	}

	jval, err := jsonpath.Get("$.lines", jobj)
	if err != nil {
		return nil, fmt.Errorf("overview has no lines: %w", err)
	}
	jlines, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("overview lines is not an array")
	}

	records := make([]farm.PriceRecord, 0, len(jlines))
	for _, jline := range jlines {
		m, ok := jline.(map[string]any)
		if !ok {
			continue
		}
		name := CleanName(jstring(m, "name", "currencyTypeName"))
		if name == "" {
			continue
		}
		records = append(records, farm.PriceRecord{
			Name:         name,
			Section:      sectionKey,
			Icon:         normalizeURL(jstring(m, "icon")),
			RawAmount:    jamount(m, "amount", "value"),
			RawUnit:      CleanName(jstring(m, "unit", "tradeUnit")),
			UnitIcon:     normalizeURL(jstring(m, "unitIcon")),
			ExaltedValue: jamount(m, "exaltedValue", "primaryValue"),
		})
		if len(records) == maxLines {
			break
		}
	}
	return records, nil
}

// jstring returns the first of the keys holding a string.
func jstring(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}

// jamount returns the first of the keys holding a number, as a parsed
// amount. Strings are accepted too, the site sometimes serves compact
// figures like "3.4k".
func jamount(m map[string]any, keys ...string) farm.Amount {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return farm.AmountOf(v)
		case string:
			if a := ParseCompactNumber(v); !a.IsMissing() {
				return a
			}
		}
	}
	return farm.Missing
}
