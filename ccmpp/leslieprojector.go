package ccmpp

import (
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// ProjectLeslie advances the base population with one Leslie matrix per step
// and returns the population grid. Column 0 holds the base population and
// column t+1 the population after step t.
//
// Half of each step's net migrants move before the matrix applies and half
// after.
func ProjectLeslie[T scalar.Number[T]](params Params[T]) (vec.Grid[T], error) {
	if err := params.Validate(); err != nil {
		return vec.Grid[T]{}, err
	}

	nAges := params.NAges()
	nSteps := params.NSteps()
	half := scalar.FromFloat[T](0.5)

	population := vec.NewGrid[T](nAges, nSteps+1)
	copy(population.Col(0), params.BasePop)

	for step := 0; step < nSteps; step++ {
		leslie, err := BuildLeslieMatrix(
			params.Sx.Col(step), params.Fx.Col(step),
			params.Srb[step], params.AgeSpan, params.FxIdx)
		if err != nil {
			return vec.Grid[T]{}, err
		}

		current := population.Col(step)
		gx := params.Gx.Col(step)

		halfMigrants := make(vec.Vector[T], nAges)
		moved := make(vec.Vector[T], nAges)
		for a := 0; a < nAges; a++ {
			halfMigrants[a] = half.Mul(current[a].Mul(gx[a]))
			moved[a] = current[a].Add(halfMigrants[a])
		}

		projected := leslie.MulVec(moved)

		next := population.Col(step + 1)
		for a := 0; a < nAges; a++ {
			next[a] = projected[a].Add(halfMigrants[a])
		}
	}

	return population, nil
}
