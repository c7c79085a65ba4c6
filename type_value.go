package farm

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency codes registered with go-money for the game currencies a value
// can be denominated in. Orbs are not ISO currencies, so the codes are
// declared here once and reused for all display formatting.
const (
	ExaltedCode = "EXA"
	DivineCode  = "DIV"
	ChaosCode   = "CHA"
)

func init() {
	money.AddCurrency(ExaltedCode, "ex", "1 $", ".", ",", 2)
	money.AddCurrency(DivineCode, "div", "1 $", ".", ",", 2)
	money.AddCurrency(ChaosCode, "c", "1 $", ".", ",", 2)
}

// Value represents an amount denominated in a game currency unit,
// the Exalted Orb by default.
type Value struct {
	value decimal.Decimal
	unit  string
}

func V[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, unit string) Value {
	return Value{value: newDecimal(value), unit: unit}
}

// Exalted returns a value denominated in the reference unit.
func Exalted[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Value {
	return V(value, ExaltedCode)
}

// currency returns the value's go-money currency, never nil.
func (v Value) currency() money.Currency {
	return *money.New(0, v.unit).Currency()
}

// String returns the value formatted with the unit's grapheme, e.g. "150 ex".
func (v Value) String() string {
	cur := v.currency()
	dec := v.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the value with an explicit sign, and "-" for zero.
func (v Value) SignedString() string {
	if v.value.IsZero() {
		return "-"
	}
	if v.value.IsPositive() {
		return "+" + v.String()
	}
	return v.String()
}

func (v Value) Unit() string             { return v.unit }
func (v Value) Decimal() decimal.Decimal { return v.value }
func (v Value) IsZero() bool             { return v.value.IsZero() }
func (v Value) IsPositive() bool         { return v.value.IsPositive() }
func (v Value) IsNegative() bool         { return v.value.IsNegative() }
func (v Value) Neg() Value               { return Value{value: v.value.Neg(), unit: v.unit} }
func (v Value) Mul(q Quantity) Value     { return Value{value: v.value.Mul(q.value), unit: v.unit} }

// Equal reports whether both values are equal in amount and unit.
func (v Value) Equal(w Value) bool { return v.value.Equal(w.value) && v.unit == w.unit }

// binary operators.
func (v Value) Add(w Value) Value { return Value{value: v.value.Add(w.value), unit: unit(v, w)} }
func (v Value) Sub(w Value) Value { return Value{value: v.value.Sub(w.value), unit: unit(v, w)} }

// makes the "" unit totally weak.
func unit(a, b Value) string {
	if a.unit == "" {
		return b.unit
	}
	if b.unit == "" {
		return a.unit
	}
	if a.unit != b.unit {
		panic("unit mismatch " + a.unit + "!=" + b.unit)
	}
	return a.unit
}
