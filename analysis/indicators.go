package analysis

import (
	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/scalar"
)

// TotalPopulation returns the population total after the given number of
// steps. Step zero is the base population.
func TotalPopulation[T scalar.Number[T]](
	proj *ccmpp.Projection[T],
	step int,
) T {
	return proj.Population.Col(step).Sum()
}

// TotalBirths returns the births of a step, summed over the fertile groups.
func TotalBirths[T scalar.Number[T]](proj *ccmpp.Projection[T], step int) T {
	return proj.Births.Col(step).Sum()
}

// TotalDeaths returns the deaths of a step, infant deaths included.
func TotalDeaths[T scalar.Number[T]](proj *ccmpp.Projection[T], step int) T {
	return proj.Deaths.Col(step).Sum()
}

// NetMigration returns the net number of migrants of a step. In-migration
// counts positive, out-migration negative.
func NetMigration[T scalar.Number[T]](proj *ccmpp.Projection[T], step int) T {
	return proj.Migrations.Col(step).Sum()
}

// TotalFertilityRate returns the expected lifetime births per woman under
// the fertility rates of a step: the age span times the sum of the rates.
func TotalFertilityRate[T scalar.Number[T]](
	proj *ccmpp.Projection[T],
	step int,
) T {
	params := proj.Params()

	return params.AgeSpan.Mul(params.Fx.Col(step).Sum())
}
