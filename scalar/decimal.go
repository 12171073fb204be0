package scalar

import "github.com/shopspring/decimal"

// Dec is an arbitrary-precision decimal scalar backed by
// github.com/shopspring/decimal. It trades speed for reproducible arithmetic
// that does not depend on float rounding, which is occasionally useful when
// two projection runs on different platforms must agree bit for bit.
type Dec struct {
	v decimal.Decimal
}

// NewDec builds a Dec from a decimal value.
func NewDec(v decimal.Decimal) Dec { return Dec{v: v} }

// Decimal returns the underlying decimal value.
func (a Dec) Decimal() decimal.Decimal { return a.v }

// Add returns a + b.
func (a Dec) Add(b Dec) Dec { return Dec{v: a.v.Add(b.v)} }

// Sub returns a - b.
func (a Dec) Sub(b Dec) Dec { return Dec{v: a.v.Sub(b.v)} }

// Mul returns a * b.
func (a Dec) Mul(b Dec) Dec { return Dec{v: a.v.Mul(b.v)} }

// Div returns a / b at the package-level division precision of
// shopspring/decimal.
func (a Dec) Div(b Dec) Dec { return Dec{v: a.v.Div(b.v)} }

// Less reports whether a < b.
func (a Dec) Less(b Dec) bool { return a.v.LessThan(b.v) }

// FromFloat builds a Dec from a float constant.
func (Dec) FromFloat(v float64) Dec { return Dec{v: decimal.NewFromFloat(v)} }

// Float returns the nearest float64.
func (a Dec) Float() float64 {
	f, _ := a.v.Float64()
	return f
}
