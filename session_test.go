package farm

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

// setupCatalog builds the catalog used by the session tests.
func setupCatalog(t *testing.T) *Catalog {
	t.Helper()
	return NewCatalog([]PriceRecord{
		rec("Exalted Orb", 1, "Exalted Orb"),
		rec("Divine Orb", 150, "Exalted Orb"),
		rec("Chaos Orb", 0.005, "Exalted Orb"),
	})
}

func wantValue(t *testing.T, got Value, want string) {
	t.Helper()
	if w := decimal.RequireFromString(want); !got.Decimal().Equal(w) {
		t.Fatalf("value = %s, want %s", got.Decimal(), w)
	}
}

func TestSession_Investment(t *testing.T) {
	testCases := []struct {
		name     string
		quantity float64
		unitCost float64
		want     string
	}{
		{"ten maps at two exalted", 10, 2, "20"},
		{"zero quantity", 0, 99, "0"},
		{"zero cost", 10, 0, "0"},
		{"negative quantity clamps", -10, 2, "0"},
		{"negative cost clamps", 10, -2, "0"},
		{"fractional cost", 8, 0.25, "2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Session{
				InvestQuantity: QuantityOf(tc.quantity),
				InvestUnitCost: Exalted(decimal.NewFromFloat(tc.unitCost)),
			}
			wantValue(t, s.Investment(), tc.want)
		})
	}
}

func TestSession_Investment_NonFiniteClampsToZero(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := &Session{InvestQuantity: QuantityOf(f), InvestUnitCost: Exalted(2)}
		wantValue(t, s.Investment(), "0")
	}
}

func TestSession_LootTotal(t *testing.T) {
	catalog := setupCatalog(t)

	testCases := []struct {
		name  string
		lines []LootLine
		want  string
	}{
		{
			name:  "empty session",
			lines: nil,
			want:  "0",
		},
		{
			name: "catalog line",
			lines: []LootLine{
				{Kind: CatalogLine, Item: "Divine Orb", Quantity: Q(2)},
			},
			want: "300",
		},
		{
			name: "two hundred chaos",
			lines: []LootLine{
				{Kind: CatalogLine, Item: "chaos orb", Quantity: Q(200)},
			},
			want: "1",
		},
		{
			name: "item names match case-insensitively",
			lines: []LootLine{
				{Kind: CatalogLine, Item: "DIVINE ORB", Quantity: Q(1)},
			},
			want: "150",
		},
		{
			name: "manual line ignores the catalog",
			lines: []LootLine{
				{Kind: ManualLine, Item: "lucky ring", UnitValue: Exalted(3.5), Quantity: Q(4)},
			},
			want: "14",
		},
		{
			name: "unmatched item contributes zero",
			lines: []LootLine{
				{Kind: CatalogLine, Item: "Orb of Typos", Quantity: Q(50)},
				{Kind: CatalogLine, Item: "Divine Orb", Quantity: Q(1)},
			},
			want: "150",
		},
		{
			name: "negative quantity contributes zero",
			lines: []LootLine{
				{Kind: CatalogLine, Item: "Divine Orb", Quantity: Q(-3)},
			},
			want: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession()
			s.Lines = tc.lines
			wantValue(t, s.LootTotal(catalog), tc.want)
		})
	}
}

func TestSession_Gain(t *testing.T) {
	// invest 10 maps at 2 ex, loot 35 ex, gain 15 ex.
	s := &Session{
		InvestQuantity: Q(10),
		InvestUnitCost: Exalted(2),
		Lines: []LootLine{
			{Kind: ManualLine, Item: "heap of loot", UnitValue: Exalted(35), Quantity: Q(1)},
		},
	}
	catalog := NewCatalog(nil)

	wantValue(t, s.Investment(), "20")
	wantValue(t, s.LootTotal(catalog), "35")
	wantValue(t, s.Gain(catalog), "15")
}

func TestSession_Gain_MayBeNegative(t *testing.T) {
	s := &Session{InvestQuantity: Q(10), InvestUnitCost: Exalted(2)}
	gain := s.Gain(NewCatalog(nil))
	wantValue(t, gain, "-20")
	if !gain.IsNegative() {
		t.Error("gain should be negative for a no-loot run")
	}
}

func TestSession_TotalsOnEmptyCatalog(t *testing.T) {
	// Lines referencing a catalog still compute without error against an
	// empty catalog, they are just worth nothing.
	s := NewSession()
	s.Lines = []LootLine{
		{Kind: CatalogLine, Item: "Divine Orb", Quantity: Q(5)},
		{Kind: ManualLine, Item: "relic", UnitValue: Exalted(7), Quantity: Q(2)},
	}
	catalog := NewCatalog(nil)

	wantValue(t, s.LootTotal(catalog), "14")
}

func TestNewDual(t *testing.T) {
	divine := decimal.NewFromInt(150)

	d := NewDual(Exalted(300), ConversionRates{ExaltedPerDivine: &divine})
	wantValue(t, d.Exalted, "300")
	wantValue(t, d.Divine, "2")
	if d.Divine.Unit() != DivineCode {
		t.Errorf("Divine.Unit() = %q, want %q", d.Divine.Unit(), DivineCode)
	}

	// No rate: the divine figure is reported as zero, never invented.
	d = NewDual(Exalted(300), ConversionRates{})
	wantValue(t, d.Exalted, "300")
	wantValue(t, d.Divine, "0")
}

func TestNewSessionReport(t *testing.T) {
	catalog := setupCatalog(t)
	s := &Session{
		InvestQuantity: Q(10),
		InvestUnitCost: Exalted(2),
		Lines: []LootLine{
			{Kind: CatalogLine, Item: "divine orb", Quantity: Q(1)},
			{Kind: CatalogLine, Item: "Orb of Typos", Quantity: Q(3)},
			{Kind: ManualLine, Item: "relic", UnitValue: Exalted(5), Quantity: Q(2)},
		},
	}

	report := NewSessionReport(s, catalog)

	wantValue(t, report.Invested.Exalted, "20")
	wantValue(t, report.Looted.Exalted, "160")
	wantValue(t, report.Gain.Exalted, "140")

	if len(report.Lines) != 3 {
		t.Fatalf("report has %d lines, want 3", len(report.Lines))
	}
	if !report.Lines[0].Matched {
		t.Error("divine orb line should be matched")
	}
	if report.Lines[1].Matched {
		t.Error("unknown item line should not be matched")
	}
	if !report.Lines[2].Matched {
		t.Error("manual line is always matched")
	}
	wantValue(t, report.Lines[1].Contribution, "0")
	wantValue(t, report.Lines[2].Contribution, "10")
}
