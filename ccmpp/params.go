package ccmpp

import (
	"fmt"

	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// Params bundles the demographic inputs of one projection. All grids carry
// one column per projection step.
type Params[T scalar.Number[T]] struct {
	// BasePop is the population per age group at the start of the
	// projection.
	BasePop vec.Vector[T]

	// Sx is the survival schedule. Each column has NAges+1 rows: row 0 is
	// the survival of newborns into the youngest age group, row a for
	// 1 <= a <= NAges-1 is the survival of group a-1 into group a, and the
	// last row is the survival of the open age group onto itself.
	Sx vec.Grid[T]

	// Fx is the fertility schedule, covering only the NFx fertile age
	// groups.
	Fx vec.Grid[T]

	// Gx is the net migration rate per age group, as a proportion of the
	// population at the start of the step.
	Gx vec.Grid[T]

	// Srb is the sex ratio at birth per step.
	Srb vec.Vector[T]

	// AgeSpan is the width of every age group, which equals the length of
	// every step.
	AgeSpan T

	// FxIdx is the index of the first fertile age group. It must be at
	// least 1.
	FxIdx int
}

// NAges returns the number of age groups.
func (p Params[T]) NAges() int {
	return len(p.BasePop)
}

// NSteps returns the number of projection steps.
func (p Params[T]) NSteps() int {
	return p.Sx.Cols()
}

// NFx returns the number of fertile age groups.
func (p Params[T]) NFx() int {
	return p.Fx.Rows()
}

// Validate checks that the parameters describe a projection that can run
// without reading or writing out of bounds. The returned error wraps one of
// the sentinel errors of this package.
func (p Params[T]) Validate() error {
	nAges := p.NAges()
	if nAges == 0 {
		return ErrEmptyBasePopulation
	}

	nSteps := p.NSteps()
	if nSteps == 0 {
		return ErrNoProjectionSteps
	}

	if p.Sx.Rows() != nAges+1 {
		return fmt.Errorf("%w: have %d rows, want %d",
			ErrSurvivalShape, p.Sx.Rows(), nAges+1)
	}

	nFx := p.NFx()
	if nFx == 0 {
		return ErrNoFertileAgeGroups
	}

	if p.FxIdx < 1 {
		return fmt.Errorf("%w: index %d", ErrFertileIndex, p.FxIdx)
	}

	if p.FxIdx+nFx > nAges {
		return fmt.Errorf("%w: band covers groups %d to %d, have %d groups",
			ErrFertileBand, p.FxIdx, p.FxIdx+nFx-1, nAges)
	}

	if p.Fx.Cols() != nSteps {
		return fmt.Errorf("%w: fertility has %d columns, want %d",
			ErrShapeMismatch, p.Fx.Cols(), nSteps)
	}

	if p.Gx.Rows() != nAges || p.Gx.Cols() != nSteps {
		return fmt.Errorf("%w: migration is %dx%d, want %dx%d",
			ErrShapeMismatch, p.Gx.Rows(), p.Gx.Cols(), nAges, nSteps)
	}

	if len(p.Srb) != nSteps {
		return fmt.Errorf("%w: sex ratio has %d entries, want %d",
			ErrShapeMismatch, len(p.Srb), nSteps)
	}

	return nil
}
