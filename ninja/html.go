package ninja

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/datrise/farm"
)

// ParseEconomyTable extracts price lines from a rendered economy page.
// The table layout is: first cell holds the item icon and name, and the
// "Value" column holds "<amount> <unit icon>".
func ParseEconomyTable(sectionKey string, r io.Reader) ([]farm.PriceRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse economy page: %w", err)
	}

	valueCol := -1
	doc.Find("table thead th").EachWithBreak(func(i int, th *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(th.Text()), "value") {
			valueCol = i
			return false
		}
		return true
	})
	if valueCol < 0 {
		return nil, fmt.Errorf("value column not found")
	}

	var records []farm.PriceRecord
	doc.Find("table tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() <= valueCol {
			return true
		}

		nameCell := tds.Eq(0)
		name := CleanName(nameCell.Text())
		if name == "" {
			return true
		}
		icon, _ := nameCell.Find("img").First().Attr("src")

		amountText, unit, unitIcon := valueCell(tds.Eq(valueCol))

		records = append(records, farm.PriceRecord{
			Name:      name,
			Section:   sectionKey,
			Icon:      normalizeURL(icon),
			RawAmount: ParseCompactNumber(amountText),
			RawUnit:   CleanName(unit),
			UnitIcon:  normalizeURL(unitIcon),
		})
		return len(records) < maxLines
	})

	return records, nil
}

// valueCell reads the amount token and the unit from a value cell: the
// amount is the first numeric token of the text, the unit the last icon's
// accessible name.
func valueCell(td *goquery.Selection) (amountText, unit, unitIcon string) {
	for _, token := range strings.Fields(td.Text()) {
		if token[0] >= '0' && token[0] <= '9' {
			amountText = token
			break
		}
	}

	img := td.Find("img").Last()
	if img.Length() > 0 {
		for _, attr := range []string{"aria-label", "alt", "title"} {
			if v, ok := img.Attr(attr); ok && strings.TrimSpace(v) != "" {
				unit = strings.TrimSpace(v)
				break
			}
		}
		unitIcon, _ = img.Attr("src")
	}
	return amountText, unit, unitIcon
}
