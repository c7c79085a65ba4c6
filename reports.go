package farm

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dual expresses one exalted value together with its divine figure. The two
// numbers are independently meaningful and never conflated: when the divine
// rate is unknown the divine figure is simply zero.
type Dual struct {
	Exalted Value
	Divine  Value
}

// NewDual converts a value in the reference unit into a dual display using
// the catalog's divine rate.
func NewDual(v Value, rates ConversionRates) Dual {
	d := Dual{Exalted: v, Divine: V(decimal.Zero, DivineCode)}
	if rate := rates.ExaltedPerDivine; rate != nil && rate.IsPositive() {
		d.Divine = V(v.Decimal().Div(*rate), DivineCode)
	}
	return d
}

// SessionReport is the computed state of a farming run: the three totals and
// the per-line breakdown, ready for rendering.
type SessionReport struct {
	League    string
	UpdatedAt time.Time

	Invested Dual
	Looted   Dual
	Gain     Dual

	Lines []LineReport
}

// LineReport is the computed view of one loot line.
type LineReport struct {
	Kind         LineKind
	Item         string
	Quantity     Quantity
	UnitPrice    Value
	Contribution Value
	// Matched is false for a catalog line whose item name is not in the
	// catalog, a normal typing-in-progress state that contributes zero.
	Matched bool
}

// NewSessionReport computes the report for the session against the catalog.
// It is a pure function of its inputs and never fails.
func NewSessionReport(s *Session, c *Catalog) *SessionReport {
	rates := c.Rates()
	report := &SessionReport{
		League:    c.League,
		UpdatedAt: c.UpdatedAt,
		Invested:  NewDual(s.Investment(), rates),
		Looted:    NewDual(s.LootTotal(c), rates),
		Gain:      NewDual(s.Gain(c), rates),
	}
	for _, line := range s.Lines {
		matched := line.Kind == ManualLine
		if !matched {
			_, matched = c.Lookup(line.Item)
		}
		report.Lines = append(report.Lines, LineReport{
			Kind:         line.Kind,
			Item:         line.Item,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice(c),
			Contribution: line.Contribution(c),
			Matched:      matched,
		})
	}
	return report
}
