package farm

import (
	"github.com/shopspring/decimal"
)

// LineKind distinguishes loot lines priced from the catalog from manually
// priced ones.
type LineKind int

const (
	// CatalogLine is priced by a case-insensitive catalog lookup.
	CatalogLine LineKind = iota
	// ManualLine carries its own unit value.
	ManualLine
)

func (k LineKind) String() string {
	switch k {
	case CatalogLine:
		return "catalog"
	case ManualLine:
		return "manual"
	default:
		return "unknown"
	}
}

// LootLine is one row of the haul: an item name with a quantity, and for
// manual lines a unit value in exalted.
type LootLine struct {
	Kind      LineKind
	Item      string
	Quantity  Quantity
	UnitValue Value // meaningful for manual lines only
}

// UnitPrice returns the exalted value of a single item of this line. A
// catalog line whose name matches nothing is worth zero.
func (l LootLine) UnitPrice(c *Catalog) Value {
	if l.Kind == ManualLine {
		return Exalted(clampPositive(l.UnitValue.Decimal()))
	}
	if rec, ok := c.Lookup(l.Item); ok {
		return rec.Value()
	}
	return Exalted(decimal.Zero)
}

// Contribution returns the line's share of the loot total.
func (l LootLine) Contribution(c *Catalog) Value {
	return l.UnitPrice(c).Mul(Q(clampPositive(l.Quantity.Decimal())))
}

// Session is the aggregate of one farming run: the investment inputs plus
// the ordered loot lines. Totals are pure functions of the session and the
// catalog; there is no hidden state.
type Session struct {
	InvestQuantity Quantity
	InvestUnitCost Value
	Lines          []LootLine
}

// DefaultInvestQuantity is the map count a fresh session starts with.
var DefaultInvestQuantity = Q(10)

// NewSession returns a session with the default investment inputs and no
// loot lines.
func NewSession() *Session {
	return &Session{
		InvestQuantity: DefaultInvestQuantity,
		InvestUnitCost: Exalted(decimal.Zero),
	}
}

// Investment returns quantity times unit cost. Negative or non-finite
// inputs count as zero, silently: the whole pipeline never rejects input.
func (s *Session) Investment() Value {
	q := clampPositive(s.InvestQuantity.Decimal())
	cost := clampPositive(s.InvestUnitCost.Decimal())
	return Exalted(q.Mul(cost))
}

// LootTotal sums the contributions of all loot lines. An empty session
// yields zero.
func (s *Session) LootTotal(c *Catalog) Value {
	total := Exalted(decimal.Zero)
	for _, line := range s.Lines {
		total = total.Add(line.Contribution(c))
	}
	return total
}

// Gain returns loot total minus investment. It is not clamped: a losing run
// yields a negative gain.
func (s *Session) Gain(c *Catalog) Value {
	return s.LootTotal(c).Sub(s.Investment())
}

// clampPositive is the single forgiving-input rule: negative numbers count
// as zero. Non-finite floats are already zeroed at parse time.
func clampPositive(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
