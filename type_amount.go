package farm

import (
	"math"

	"github.com/shopspring/decimal"
)

// Amount is the result of parsing a scraped numeric field: either a valid
// number or missing. It replaces the ad hoc zero-fallbacks of the scraped
// data with a single explicit rule: a missing, non-finite or negative amount
// contributes zero to any computation.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// Missing is the Amount of a field that was absent or unparseable.
var Missing = Amount{}

// ValidAmount returns an Amount holding the given number.
func ValidAmount(v decimal.Decimal) Amount {
	return Amount{value: v, valid: true}
}

// AmountOf parses a float into an Amount. NaN and infinities are Missing,
// because they cannot take part in any rate math.
func AmountOf(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing
	}
	return Amount{value: decimal.NewFromFloat(f), valid: true}
}

// AmountPtr parses an optional float, as found in scraped JSON where the
// field can be null.
func AmountPtr(f *float64) Amount {
	if f == nil {
		return Missing
	}
	return AmountOf(*f)
}

// IsMissing reports whether the amount was absent or unparseable.
func (a Amount) IsMissing() bool { return !a.valid }

// IsPositive reports whether the amount is a valid, strictly positive number.
func (a Amount) IsPositive() bool { return a.valid && a.value.IsPositive() }

// Decimal returns the amount value, or zero when missing.
func (a Amount) Decimal() decimal.Decimal {
	if !a.valid {
		return decimal.Zero
	}
	return a.value
}

// orZero applies the clamp rule: missing or negative amounts become zero
// before any rate math.
func (a Amount) orZero() decimal.Decimal {
	if !a.valid || a.value.IsNegative() {
		return decimal.Zero
	}
	return a.value
}

// Equal reports whether both amounts are missing, or both valid and equal.
func (a Amount) Equal(b Amount) bool {
	if a.valid != b.valid {
		return false
	}
	return !a.valid || a.value.Equal(b.value)
}

func (a Amount) String() string {
	if !a.valid {
		return "-"
	}
	return a.value.String()
}

// Float returns an optional float for JSON encoding: nil when missing.
func (a Amount) Float() *float64 {
	if !a.valid {
		return nil
	}
	f := a.value.InexactFloat64()
	return &f
}
