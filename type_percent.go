package congress

import "github.com/shopspring/decimal"

// Percent is a percentage rounded to 2 decimal places, 50 meaning 50%.
type Percent struct{ value decimal.Decimal }

// NewPercent returns v as a Percent, rounded half away from zero to 2 places.
func NewPercent(v decimal.Decimal) Percent { return Percent{v.Round(2)} }

// Decimal returns the value as a decimal.
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }
func (p Percent) IsPositive() bool     { return p.value.IsPositive() }
func (p Percent) IsNegative() bool     { return p.value.IsNegative() }
func (p Percent) Abs() Percent         { return Percent{p.value.Abs()} }

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

// SignedString returns the percentage with an explicit sign.
// 0 is represented as a "-".
func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

// percentChange returns (to-from)/from in percent.
func percentChange(from, to decimal.Decimal) Percent {
	return NewPercent(to.Sub(from).Div(from).Mul(decimal.NewFromInt(100)))
}
