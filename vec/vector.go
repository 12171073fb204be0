// Package vec provides the dense and sparse containers that the projection
// engine computes on. All containers are generic over the scalar type so that
// the same arithmetic runs on plain floats, dual numbers, or decimals.
package vec

import (
	"fmt"

	"github.com/sarchlab/cohort/scalar"
)

// A Vector is a dense, ordered collection of scalars.
type Vector[T scalar.Number[T]] []T

// NewVector creates a zero-valued vector of the given length.
func NewVector[T scalar.Number[T]](n int) Vector[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: vector length must not be negative, got %d", n))
	}

	v := make(Vector[T], n)
	for i := range v {
		v[i] = scalar.FromFloat[T](0)
	}

	return v
}

// FromFloats converts a float slice into a vector of scalars.
func FromFloats[T scalar.Number[T]](values []float64) Vector[T] {
	v := make(Vector[T], len(values))
	for i, f := range values {
		v[i] = scalar.FromFloat[T](f)
	}

	return v
}

// Clone returns a copy of the vector that shares no storage with the
// original.
func (v Vector[T]) Clone() Vector[T] {
	c := make(Vector[T], len(v))
	copy(c, v)

	return c
}

// Fill sets every element to the given value.
func (v Vector[T]) Fill(value T) {
	for i := range v {
		v[i] = value
	}
}

// Sum folds the elements left to right, starting from zero.
func (v Vector[T]) Sum() T {
	acc := scalar.FromFloat[T](0)
	for _, x := range v {
		acc = acc.Add(x)
	}

	return acc
}

// Floats exports the vector as a plain float slice.
func (v Vector[T]) Floats() []float64 {
	f := make([]float64, len(v))
	for i, x := range v {
		f[i] = x.Float()
	}

	return f
}
