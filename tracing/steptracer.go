// Package tracing records the flows of a running projection through a
// datarecording backend so that they can be inspected after the run.
package tracing

import (
	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/datarecording"
	"github.com/sarchlab/cohort/hooking"
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/vec"
)

// StepTraceTable is the name of the table that holds the step trace.
const StepTraceTable = "step_trace"

// The quantities that a StepTracer records.
const (
	QuantityPopulation = "population"
	QuantityDeaths     = "deaths"
	QuantityBirths     = "births"
	QuantityMigrations = "migrations"
	QuantityInfants    = "infants"
)

// A StepTraceEntry is one long-format row of the step trace. Step is the
// index of the projection step that produced the value. AgeGroup follows the
// projection buffers: population and migrations use age-group indices, deaths
// use boundary indices with row 0 holding infant deaths, births use the
// absolute index of the fertile group, and infants always use zero.
type StepTraceEntry struct {
	Step     int
	Quantity string
	AgeGroup int
	Value    float64
}

// A StepTracer stores the flows of every completed projection step into a
// database. StepTracers can connect with different backends so that the
// flows can be stored in different types of databases.
type StepTracer[T scalar.Number[T]] struct {
	backend datarecording.DataRecorder
}

// NewStepTracer creates a StepTracer that writes through dataRecorder. The
// step trace table is created immediately.
func NewStepTracer[T scalar.Number[T]](
	dataRecorder datarecording.DataRecorder,
) *StepTracer[T] {
	dataRecorder.CreateTable(StepTraceTable, StepTraceEntry{})

	return &StepTracer[T]{backend: dataRecorder}
}

// CollectStepTrace lets the tracer collect the step trace of a projection.
// Attaching the same tracer to the same projection twice panics.
func CollectStepTrace[T scalar.Number[T]](
	proj *ccmpp.Projection[T],
	tracer *StepTracer[T],
) {
	proj.AcceptHook(tracer)
}

// Func records the flows of the step that just completed. The population
// written under a step is the population column that the step produced.
func (t *StepTracer[T]) Func(ctx hooking.HookCtx) {
	if ctx.Pos != ccmpp.HookPosAfterStep {
		return
	}

	proj := ctx.Domain.(*ccmpp.Projection[T])
	step := ctx.Item.(int)

	t.recordColumn(step, QuantityPopulation, 0, proj.Population.Col(step+1))
	t.recordColumn(step, QuantityDeaths, 0, proj.Deaths.Col(step))
	t.recordColumn(step, QuantityBirths, proj.Params().FxIdx,
		proj.Births.Col(step))
	t.recordColumn(step, QuantityMigrations, 0, proj.Migrations.Col(step))

	t.backend.InsertData(StepTraceTable, StepTraceEntry{
		Step:     step,
		Quantity: QuantityInfants,
		AgeGroup: 0,
		Value:    proj.Infants[step].Float(),
	})
}

func (t *StepTracer[T]) recordColumn(
	step int,
	quantity string,
	firstGroup int,
	column vec.Vector[T],
) {
	for i, value := range column {
		t.backend.InsertData(StepTraceTable, StepTraceEntry{
			Step:     step,
			Quantity: quantity,
			AgeGroup: firstGroup + i,
			Value:    value.Float(),
		})
	}
}
