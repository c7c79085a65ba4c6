package farm

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize derives, for every record, a value expressed in the reference
// unit. The output has the same length and order as the input and every
// element carries a defined, non-negative ExaltedValue.
//
// Rules, in fixed priority order:
//  1. a positive pre-supplied ExaltedValue is kept unchanged, which makes
//     re-normalizing an already-normalized list a no-op;
//  2. a record denominated in the reference unit is worth its raw amount;
//  3. a record denominated in a unit with a known rate is worth
//     rawAmount * rate;
//  4. everything else is worth zero.
//
// Missing or negative raw amounts count as zero before any rate math.
func Normalize(records []PriceRecord, rates ConversionRates) []PriceRecord {
	out := make([]PriceRecord, len(records))
	for i, rec := range records {
		out[i] = rec
		if rec.ExaltedValue.IsPositive() {
			continue
		}
		amount := rec.RawAmount.orZero()
		if strings.EqualFold(rec.RawUnit, ReferenceUnit) {
			out[i].ExaltedValue = ValidAmount(amount)
			continue
		}
		if rate := rates.For(rec.RawUnit); rate != nil {
			out[i].ExaltedValue = ValidAmount(amount.Mul(*rate))
			continue
		}
		out[i].ExaltedValue = ValidAmount(decimal.Zero) // unconvertible
	}
	return out
}
