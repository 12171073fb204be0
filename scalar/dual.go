package scalar

// Dual is a forward-mode automatic-differentiation scalar. It carries a value
// and the derivative of that value with respect to one chosen input. Running
// a projection on Dual scalars propagates the derivative through every step,
// which is what calibration pipelines use for gradient checks.
type Dual struct {
	Val float64
	Dot float64
}

// Constant builds a Dual whose derivative is zero.
func Constant(v float64) Dual {
	return Dual{Val: v}
}

// Variable builds a Dual seeded as the differentiation variable, so the
// propagated Dot fields become derivatives with respect to it.
func Variable(v float64) Dual {
	return Dual{Val: v, Dot: 1}
}

// Add returns a + b.
func (a Dual) Add(b Dual) Dual {
	return Dual{Val: a.Val + b.Val, Dot: a.Dot + b.Dot}
}

// Sub returns a - b.
func (a Dual) Sub(b Dual) Dual {
	return Dual{Val: a.Val - b.Val, Dot: a.Dot - b.Dot}
}

// Mul returns a * b with the product rule applied to the derivative.
func (a Dual) Mul(b Dual) Dual {
	return Dual{Val: a.Val * b.Val, Dot: a.Val*b.Dot + a.Dot*b.Val}
}

// Div returns a / b with the quotient rule applied to the derivative.
func (a Dual) Div(b Dual) Dual {
	return Dual{
		Val: a.Val / b.Val,
		Dot: (a.Dot*b.Val - a.Val*b.Dot) / (b.Val * b.Val),
	}
}

// Less compares the value parts only. Derivatives do not order values.
func (a Dual) Less(b Dual) bool { return a.Val < b.Val }

// FromFloat builds a constant Dual. Constants have a zero derivative.
func (Dual) FromFloat(v float64) Dual { return Dual{Val: v} }

// Float returns the value part.
func (a Dual) Float() float64 { return a.Val }
