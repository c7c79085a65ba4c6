package farm

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Domain constants of the PoE2 economy. Every catalog value is normalized
// into the reference unit; the two other units are converted through their
// own catalog entries (the anchor records).
const (
	// ReferenceUnit is the currency all values are expressed in.
	ReferenceUnit = "Exalted Orb"
	// SecondaryUnit is the high-value currency used for dual display.
	SecondaryUnit = "Divine Orb"
	// BaseUnit is the low-value common currency.
	BaseUnit = "Chaos Orb"

	// DefaultSection is assigned to records scraped without a section tag.
	DefaultSection = "currency"
)

// ConversionRates holds the derived exalted rates of the convertible units.
// Rates are always "reference units per one unit of X", so conversion is a
// single multiplication. A nil rate means unconvertible, which is distinct
// from zero: records in that unit fall back to a zero value.
type ConversionRates struct {
	ExaltedPerDivine *decimal.Decimal
	ExaltedPerChaos  *decimal.Decimal
}

// For returns the rate for a raw unit name, or nil when the unit is not a
// recognized convertible unit or its rate could not be derived.
func (r ConversionRates) For(unitName string) *decimal.Decimal {
	switch {
	case strings.EqualFold(unitName, SecondaryUnit):
		return r.ExaltedPerDivine
	case strings.EqualFold(unitName, BaseUnit):
		return r.ExaltedPerChaos
	default:
		return nil
	}
}

// ComputeRates derives the conversion rates from the anchor records of one
// catalog load. Missing anchors are an expected degraded mode (catalog
// sections lacking currency types), so there is no error: the corresponding
// rate is just nil.
func ComputeRates(records []PriceRecord) ConversionRates {
	// Locate the anchors. Last-seen wins, consistent with the lookup index.
	var reference, divine, chaos *PriceRecord
	for i := range records {
		rec := &records[i]
		switch {
		case strings.EqualFold(rec.Name, ReferenceUnit):
			reference = rec
		case strings.EqualFold(rec.Name, SecondaryUnit):
			divine = rec
		case strings.EqualFold(rec.Name, BaseUnit):
			chaos = rec
		}
	}

	// Without the reference unit's own record there is nothing to anchor the
	// rates to.
	if reference == nil {
		return ConversionRates{}
	}

	rates := ConversionRates{
		ExaltedPerDivine: directRate(divine),
		ExaltedPerChaos:  directRate(chaos),
	}

	// When a direct rate is unavailable, chain through the other derived
	// rate: an anchor priced in the other convertible unit multiplied by
	// that unit's exalted rate.
	if rates.ExaltedPerDivine == nil {
		rates.ExaltedPerDivine = chainedRate(divine, BaseUnit, rates.ExaltedPerChaos)
	}
	if rates.ExaltedPerChaos == nil {
		rates.ExaltedPerChaos = chainedRate(chaos, SecondaryUnit, rates.ExaltedPerDivine)
	}
	return rates
}

// directRate derives an anchor's exalted rate from the anchor record alone:
// its own pre-computed exalted value when positive, else its raw amount when
// it is denominated in the reference unit.
func directRate(anchor *PriceRecord) *decimal.Decimal {
	if anchor == nil {
		return nil
	}
	if anchor.ExaltedValue.IsPositive() {
		d := anchor.ExaltedValue.Decimal()
		return &d
	}
	if strings.EqualFold(anchor.RawUnit, ReferenceUnit) && anchor.RawAmount.IsPositive() {
		d := anchor.RawAmount.Decimal()
		return &d
	}
	return nil
}

// chainedRate derives an anchor's exalted rate through another unit's
// already-derived rate.
func chainedRate(anchor *PriceRecord, throughUnit string, throughRate *decimal.Decimal) *decimal.Decimal {
	if anchor == nil || throughRate == nil {
		return nil
	}
	if !strings.EqualFold(anchor.RawUnit, throughUnit) || !anchor.RawAmount.IsPositive() {
		return nil
	}
	d := anchor.RawAmount.Decimal().Mul(*throughRate)
	if !d.IsPositive() {
		return nil
	}
	return &d
}
