package ccmpp

import (
	"fmt"

	"github.com/sarchlab/cohort/hooking"
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// HookPosBeforeStep is a hook position that triggers before a projection step
// runs. The hook context item is the step index.
var HookPosBeforeStep = &hooking.HookPos{Name: "BeforeStep"}

// HookPosAfterStep is a hook position that triggers after a projection step
// completed. The hook context item is the step index.
var HookPosAfterStep = &hooking.HookPos{Name: "AfterStep"}

// A Projection runs the cohort component method step by step and records the
// demographic flows of every step. Hooks attached to the projection fire
// around each step.
//
// The flow buffers are written by Step and are read-only for everyone else.
type Projection[T scalar.Number[T]] struct {
	hooking.HookableBase

	params Params[T]

	nAges  int
	nSteps int
	nFx    int

	// Population holds one column per time point. Column 0 is the base
	// population and column t+1 the population after step t.
	Population vec.Grid[T]

	// Deaths has NAges+1 rows per step. Row 0 counts infants that die
	// before reaching the youngest age group, row a for 1 <= a <= NAges-1
	// the deaths on the transition from group a-1 into group a, and the
	// last row the deaths inside the open age group.
	Deaths vec.Grid[T]

	// Births has one row per fertile age group.
	Births vec.Grid[T]

	// Infants is the number of female births per step, after applying the
	// sex ratio at birth.
	Infants vec.Vector[T]

	// Migrations is the net migrant count per age group and step.
	Migrations vec.Grid[T]
}

// NewProjection validates the parameters and allocates a projection with all
// flow buffers zeroed and the base population in place. The parameter grids
// are referenced, not copied.
func NewProjection[T scalar.Number[T]](params Params[T]) (*Projection[T], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p := &Projection[T]{
		params: params,
		nAges:  params.NAges(),
		nSteps: params.NSteps(),
		nFx:    params.NFx(),
	}

	p.Population = vec.NewGrid[T](p.nAges, p.nSteps+1)
	p.Deaths = vec.NewGrid[T](p.nAges+1, p.nSteps)
	p.Births = vec.NewGrid[T](p.nFx, p.nSteps)
	p.Infants = vec.NewVector[T](p.nSteps)
	p.Migrations = vec.NewGrid[T](p.nAges, p.nSteps)

	copy(p.Population.Col(0), params.BasePop)

	return p, nil
}

// NAges returns the number of age groups.
func (p *Projection[T]) NAges() int {
	return p.nAges
}

// NSteps returns the number of projection steps.
func (p *Projection[T]) NSteps() int {
	return p.nSteps
}

// NFx returns the number of fertile age groups.
func (p *Projection[T]) NFx() int {
	return p.nFx
}

// Params returns the parameters the projection runs on.
func (p *Projection[T]) Params() Params[T] {
	return p.params
}

// Step advances the population from column step to column step+1 and records
// the flows of the step. Steps must run in order, each exactly once.
func (p *Projection[T]) Step(step int) {
	if step < 0 || step >= p.nSteps {
		panic(fmt.Sprintf(
			"ccmpp: step %d out of range [0, %d)", step, p.nSteps))
	}

	p.InvokeHook(hooking.HookCtx{
		Domain: p,
		Pos:    HookPosBeforeStep,
		Item:   step,
	})

	half := scalar.FromFloat[T](0.5)
	one := scalar.FromFloat[T](1)

	sx := p.params.Sx.Col(step)
	fx := p.params.Fx.Col(step)
	gx := p.params.Gx.Col(step)
	fxIdx := p.params.FxIdx

	working := p.Population.Col(step + 1)
	migrations := p.Migrations.Col(step)
	deaths := p.Deaths.Col(step)
	births := p.Births.Col(step)

	copy(working, p.Population.Col(step))

	// First migration half.
	for a := 0; a < p.nAges; a++ {
		migrations[a] = working[a].Mul(gx[a])
		working[a] = working[a].Add(half.Mul(migrations[a]))
	}

	// Deaths on the way into each group, and inside the open age group.
	for a := 1; a <= p.nAges; a++ {
		deaths[a] = working[a-1].Mul(one.Sub(sx[a]))
	}

	// Births to the fertile groups over the first half of the step.
	halfSpan := half.Mul(p.params.AgeSpan)
	for i := 0; i < p.nFx; i++ {
		births[i] = halfSpan.Mul(fx[i]).Mul(working[fxIdx+i])
	}

	// Aging. Every group moves up one slot and the survivors of the open
	// age group stay where they are. The loop runs downward so each read
	// sees the pre-aging value.
	last := p.nAges - 1
	openAgeSurvivors := working[last].Sub(deaths[p.nAges])
	for a := last; a > 0; a-- {
		working[a] = working[a-1].Sub(deaths[a])
	}
	working[last] = working[last].Add(openAgeSurvivors)

	// Births over the second half of the step, to the aged population.
	for i := 0; i < p.nFx; i++ {
		births[i] = births[i].Add(halfSpan.Mul(fx[i]).Mul(working[fxIdx+i]))
	}

	// Infants fill the youngest group, less the ones that die on the way.
	p.Infants[step] = births.Sum().Div(one.Add(p.params.Srb[step]))
	deaths[0] = p.Infants[step].Mul(one.Sub(sx[0]))
	working[0] = p.Infants[step].Sub(deaths[0])

	// Second migration half.
	for a := 0; a < p.nAges; a++ {
		working[a] = working[a].Add(half.Mul(migrations[a]))
	}

	p.InvokeHook(hooking.HookCtx{
		Domain: p,
		Pos:    HookPosAfterStep,
		Item:   step,
	})
}

// Run executes every projection step in order.
func (p *Projection[T]) Run() {
	for step := 0; step < p.nSteps; step++ {
		p.Step(step)
	}
}
