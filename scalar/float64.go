package scalar

// Float64 is the plain floating-point scalar. It is the type to use whenever
// no derivative or exactness requirement is in play.
type Float64 float64

// Add returns a + b.
func (a Float64) Add(b Float64) Float64 { return a + b }

// Sub returns a - b.
func (a Float64) Sub(b Float64) Float64 { return a - b }

// Mul returns a * b.
func (a Float64) Mul(b Float64) Float64 { return a * b }

// Div returns a / b.
func (a Float64) Div(b Float64) Float64 { return a / b }

// Less reports whether a < b.
func (a Float64) Less(b Float64) bool { return a < b }

// FromFloat builds a Float64 from a float constant.
func (Float64) FromFloat(v float64) Float64 { return Float64(v) }

// Float returns the value as a plain float64.
func (a Float64) Float() float64 { return float64(a) }
