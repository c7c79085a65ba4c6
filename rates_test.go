package farm

import (
	"testing"

	"github.com/shopspring/decimal"
)

// rec builds a raw scraped record for tests.
func rec(name string, amount float64, unit string) PriceRecord {
	return PriceRecord{Name: name, RawAmount: AmountOf(amount), RawUnit: unit}
}

// recValued builds a record carrying a pre-computed exalted value.
func recValued(name string, amount float64, unit string, exalted float64) PriceRecord {
	r := rec(name, amount, unit)
	r.ExaltedValue = AmountOf(exalted)
	return r
}

func wantRate(t *testing.T, got *decimal.Decimal, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Fatalf("rate = %s, want nil", got)
		}
		return
	}
	if got == nil {
		t.Fatalf("rate = nil, want %s", want)
	}
	if w := decimal.RequireFromString(want); !got.Equal(w) {
		t.Fatalf("rate = %s, want %s", got, w)
	}
}

func TestComputeRates(t *testing.T) {
	testCases := []struct {
		name       string
		records    []PriceRecord
		wantDivine string // "" means nil
		wantChaos  string
	}{
		{
			name:       "empty catalog",
			records:    nil,
			wantDivine: "",
			wantChaos:  "",
		},
		{
			name: "missing reference anchor nullifies everything",
			records: []PriceRecord{
				rec("Divine Orb", 150, "Exalted Orb"),
				rec("Chaos Orb", 0.005, "Exalted Orb"),
			},
			wantDivine: "",
			wantChaos:  "",
		},
		{
			name: "direct rates from amounts in the reference unit",
			records: []PriceRecord{
				rec("Exalted Orb", 1, "Exalted Orb"),
				rec("Divine Orb", 150, "Exalted Orb"),
				rec("Chaos Orb", 0.005, "Exalted Orb"),
			},
			wantDivine: "150",
			wantChaos:  "0.005",
		},
		{
			name: "anchor names match case-insensitively",
			records: []PriceRecord{
				rec("exalted orb", 1, "exalted orb"),
				rec("DIVINE ORB", 150, "EXALTED ORB"),
			},
			wantDivine: "150",
			wantChaos:  "",
		},
		{
			name: "pre-computed value wins over the raw amount",
			records: []PriceRecord{
				rec("Exalted Orb", 1, "Exalted Orb"),
				recValued("Divine Orb", 999, "Exalted Orb", 150),
			},
			wantDivine: "150",
			wantChaos:  "",
		},
		{
			name: "non-positive anchor amount yields no rate",
			records: []PriceRecord{
				rec("Exalted Orb", 1, "Exalted Orb"),
				rec("Divine Orb", -5, "Exalted Orb"),
				rec("Chaos Orb", 0, "Exalted Orb"),
			},
			wantDivine: "",
			wantChaos:  "",
		},
		{
			name: "divine chains through the chaos rate",
			records: []PriceRecord{
				rec("Exalted Orb", 1, "Exalted Orb"),
				rec("Chaos Orb", 0.005, "Exalted Orb"),
				rec("Divine Orb", 30000, "Chaos Orb"),
			},
			wantDivine: "150",
			wantChaos:  "0.005",
		},
		{
			name: "chaos chains through the divine rate",
			records: []PriceRecord{
				rec("Exalted Orb", 1, "Exalted Orb"),
				recValued("Divine Orb", 0, "", 150),
				rec("Chaos Orb", 0.00004, "Divine Orb"),
			},
			wantDivine: "150",
			wantChaos:  "0.006",
		},
		{
			name: "anchor in an unknown unit yields no rate",
			records: []PriceRecord{
				rec("Exalted Orb", 1, "Exalted Orb"),
				rec("Divine Orb", 42, "Mirror of Kalandra"),
			},
			wantDivine: "",
			wantChaos:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rates := ComputeRates(tc.records)
			wantRate(t, rates.ExaltedPerDivine, tc.wantDivine)
			wantRate(t, rates.ExaltedPerChaos, tc.wantChaos)
		})
	}
}

func TestConversionRates_For(t *testing.T) {
	divine := decimal.NewFromInt(150)
	rates := ConversionRates{ExaltedPerDivine: &divine}

	if got := rates.For("divine orb"); got == nil || !got.Equal(divine) {
		t.Errorf("For(divine orb) = %v, want 150", got)
	}
	if got := rates.For("Chaos Orb"); got != nil {
		t.Errorf("For(Chaos Orb) = %v, want nil", got)
	}
	if got := rates.For("Exalted Orb"); got != nil {
		// the reference unit has no rate, the identity rule handles it
		t.Errorf("For(Exalted Orb) = %v, want nil", got)
	}
}
