package ccmpp

import (
	"fmt"

	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// BuildLeslieMatrix folds the vital rates of one step into a square Leslie
// matrix. The survival schedule sx must have one more entry than there are
// age groups. Row 0 holds the fertility band, the subdiagonal holds the
// survival into each group, and the bottom right corner holds the survival of
// the open age group onto itself.
func BuildLeslieMatrix[T scalar.Number[T]](
	sx, fx vec.Vector[T],
	srb, ageSpan T,
	fxIdx int,
) (*vec.Sparse[T], error) {
	if len(sx) < 2 {
		return nil, fmt.Errorf("%w: have %d entries, need at least 2",
			ErrSurvivalShape, len(sx))
	}

	if len(fx) == 0 {
		return nil, ErrNoFertileAgeGroups
	}

	if fxIdx < 1 {
		return nil, fmt.Errorf("%w: index %d", ErrFertileIndex, fxIdx)
	}

	dim := len(sx) - 1
	if fxIdx+len(fx) > dim {
		return nil, fmt.Errorf("%w: band covers groups %d to %d, have %d groups",
			ErrFertileBand, fxIdx, fxIdx+len(fx)-1, dim)
	}

	half := scalar.FromFloat[T](0.5)
	one := scalar.FromFloat[T](1)
	fertK := sx[0].Mul(half).Mul(ageSpan).Div(one.Add(srb))

	// Band entry i lands in column fxIdx+i-1 and collects the births of the
	// women in that group: their post-aging rate discounted by survival,
	// plus their pre-aging rate.
	band := vec.NewVector[T](len(fx) + 1)
	for i := range band {
		if i < len(fx) {
			band[i] = band[i].Add(fx[i].Mul(sx[fxIdx+i]))
		}

		if i >= 1 {
			band[i] = band[i].Add(fx[i-1])
		}

		band[i] = band[i].Mul(fertK)
	}

	leslie := vec.NewSparse[T](dim, dim)
	for i, b := range band {
		leslie.Insert(0, fxIdx+i-1, b)
	}

	for i := 1; i < dim; i++ {
		leslie.Insert(i, i-1, sx[i])
	}

	leslie.Insert(dim-1, dim-1, sx[dim])
	leslie.Compress()

	return leslie, nil
}
