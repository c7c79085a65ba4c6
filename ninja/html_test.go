package ninja

import (
	"strings"
	"testing"

	"github.com/datrise/farm"
)

const samplePage = `<html><body>
<table>
  <thead>
    <tr><th>Name</th><th>Value</th><th>Last 7 days</th></tr>
  </thead>
  <tbody>
    <tr>
      <td><img src="//cdn.example/divine.png"/> Divine Orb WIKI</td>
      <td>150 <img src="/images/exalted.png" alt="Exalted Orb"/></td>
      <td>+3%</td>
    </tr>
    <tr>
      <td><img src="//cdn.example/chaos.png"/> Chaos Orb</td>
      <td>3.4k <img src="/images/exalted.png" title="Exalted Orb"/></td>
      <td>-1%</td>
    </tr>
    <tr>
      <td>   </td>
      <td>5 <img src="/images/exalted.png" alt="Exalted Orb"/></td>
      <td></td>
    </tr>
    <tr>
      <td>Orb of Alchemy</td>
      <td>awaiting data</td>
      <td></td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestParseEconomyTable(t *testing.T) {
	records, err := ParseEconomyTable("currency", strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ParseEconomyTable: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	divine := records[0]
	if divine.Name != "Divine Orb" {
		t.Errorf("name = %q, want Divine Orb", divine.Name)
	}
	if divine.Icon != "https://cdn.example/divine.png" {
		t.Errorf("icon = %q", divine.Icon)
	}
	if !divine.RawAmount.Equal(farm.AmountOf(150)) {
		t.Errorf("amount = %v, want 150", divine.RawAmount)
	}
	if divine.RawUnit != "Exalted Orb" {
		t.Errorf("unit = %q, want Exalted Orb", divine.RawUnit)
	}
	if divine.UnitIcon != baseURL+"/images/exalted.png" {
		t.Errorf("unitIcon = %q", divine.UnitIcon)
	}

	chaos := records[1]
	if !chaos.RawAmount.Equal(farm.AmountOf(3400)) {
		t.Errorf("amount = %v, want 3400", chaos.RawAmount)
	}
	if chaos.RawUnit != "Exalted Orb" {
		t.Errorf("unit = %q, want Exalted Orb", chaos.RawUnit)
	}

	alch := records[2]
	if alch.Name != "Orb of Alchemy" {
		t.Errorf("name = %q, want Orb of Alchemy", alch.Name)
	}
	if !alch.RawAmount.IsMissing() {
		t.Errorf("amount = %v, want missing", alch.RawAmount)
	}
	if alch.RawUnit != "" {
		t.Errorf("unit = %q, want empty", alch.RawUnit)
	}
}

func TestParseEconomyTable_NoValueColumn(t *testing.T) {
	page := `<table><thead><tr><th>Name</th><th>Price</th></tr></thead></table>`
	if _, err := ParseEconomyTable("currency", strings.NewReader(page)); err == nil {
		t.Error("expected an error on a table without a value column")
	}
}
