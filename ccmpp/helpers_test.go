package ccmpp

import (
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

func uniformGrid(rows, cols int, value float64) vec.Grid[scalar.Float64] {
	g := vec.NewGrid[scalar.Float64](rows, cols)
	g.Fill(scalar.Float64(value))

	return g
}

func uniformVector(n int, value float64) vec.Vector[scalar.Float64] {
	v := vec.NewVector[scalar.Float64](n)
	v.Fill(scalar.Float64(value))

	return v
}

// singleStepParams describes one projection step over three age groups with
// one fertile group, full survival, and no migration.
func singleStepParams() Params[scalar.Float64] {
	return Params[scalar.Float64]{
		BasePop: vec.FromFloats[scalar.Float64]([]float64{100, 100, 100}),
		Sx:      uniformGrid(4, 1, 1),
		Fx:      uniformGrid(1, 1, 0),
		Gx:      uniformGrid(3, 1, 0),
		Srb:     uniformVector(1, 1),
		AgeSpan: scalar.Float64(1),
		FxIdx:   1,
	}
}
