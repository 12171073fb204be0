// Package scalar defines the abstract numeric type that flows through the
// projection engine.
//
// Every projection algorithm is generic over a scalar type so that the same
// arithmetic can run on plain floating-point numbers, on forward-mode
// automatic-differentiation numbers when a caller needs gradients of the
// trajectory with respect to an input rate, or on exact decimals. The
// constraint deliberately stays small: addition, subtraction, multiplication,
// division, ordering, and construction from float constants.
package scalar

// Number is the constraint satisfied by every scalar type the projection
// algorithms can run on.
//
// All methods must treat the receiver as immutable and return a fresh value.
// FromFloat builds a value from a float constant and may ignore the receiver.
// Float returns a plain float64 view of the value, which reporting and
// recording layers use; types that carry more than a value (e.g. a
// derivative) expose only the value part here.
type Number[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T

	// Less reports whether the value is strictly smaller than other.
	Less(other T) bool

	FromFloat(v float64) T
	Float() float64
}

// FromFloat builds a scalar of type T from a float constant.
func FromFloat[T Number[T]](v float64) T {
	var seed T
	return seed.FromFloat(v)
}
