package analysis

import (
	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/hooking"
	"github.com/sarchlab/cohort/scalar"
)

// AnomalyTable is the name of the table that records anomalies.
const AnomalyTable = "anomalies"

// The kinds of anomalies that the detector reports.
const (
	AnomalyKindSurvivalBelowZero  = "survival_below_zero"
	AnomalyKindSurvivalAboveOne   = "survival_above_one"
	AnomalyKindNegativePopulation = "negative_population"
)

// An AnomalyEntry describes one suspicious value found during a projection.
// Anomalies are advisory. The projection continues unchanged.
type AnomalyEntry struct {
	Step     int
	AgeGroup int
	Kind     string
	Value    float64
}

// AnomalyLogger is the interface that provides the service that can record
// anomaly entries.
type AnomalyLogger interface {
	AddAnomalyEntry(entry AnomalyEntry)
}

// An AnomalyDetector is a hook that checks the inputs and outputs of every
// projection step. It reports survival proportions outside [0, 1] before a
// step runs and negative populations after it.
type AnomalyDetector[T scalar.Number[T]] struct {
	AnomalyLogger

	count int
}

// CollectAnomalies lets the detector check every step of a projection.
// Attaching the same detector to the same projection twice panics.
func CollectAnomalies[T scalar.Number[T]](
	proj *ccmpp.Projection[T],
	detector *AnomalyDetector[T],
) {
	proj.AcceptHook(detector)
}

// Count returns the number of anomalies reported so far.
func (d *AnomalyDetector[T]) Count() int {
	return d.count
}

// Func checks the survival column before a step runs and the produced
// population column after the step completes.
func (d *AnomalyDetector[T]) Func(ctx hooking.HookCtx) {
	proj := ctx.Domain.(*ccmpp.Projection[T])
	step := ctx.Item.(int)

	switch ctx.Pos {
	case ccmpp.HookPosBeforeStep:
		d.checkSurvival(proj, step)
	case ccmpp.HookPosAfterStep:
		d.checkPopulation(proj, step)
	}
}

func (d *AnomalyDetector[T]) checkSurvival(
	proj *ccmpp.Projection[T],
	step int,
) {
	zero := scalar.FromFloat[T](0)
	one := scalar.FromFloat[T](1)

	for boundary, value := range proj.Params().Sx.Col(step) {
		if value.Less(zero) {
			d.report(AnomalyEntry{
				Step:     step,
				AgeGroup: boundary,
				Kind:     AnomalyKindSurvivalBelowZero,
				Value:    value.Float(),
			})
		}

		if one.Less(value) {
			d.report(AnomalyEntry{
				Step:     step,
				AgeGroup: boundary,
				Kind:     AnomalyKindSurvivalAboveOne,
				Value:    value.Float(),
			})
		}
	}
}

func (d *AnomalyDetector[T]) checkPopulation(
	proj *ccmpp.Projection[T],
	step int,
) {
	zero := scalar.FromFloat[T](0)

	for age, value := range proj.Population.Col(step + 1) {
		if value.Less(zero) {
			d.report(AnomalyEntry{
				Step:     step,
				AgeGroup: age,
				Kind:     AnomalyKindNegativePopulation,
				Value:    value.Float(),
			})
		}
	}
}

func (d *AnomalyDetector[T]) report(entry AnomalyEntry) {
	d.count++
	d.AnomalyLogger.AddAnomalyEntry(entry)
}

// AnomalyDetectorBuilder can build an AnomalyDetector.
type AnomalyDetectorBuilder[T scalar.Number[T]] struct {
	logger AnomalyLogger
}

// MakeAnomalyDetectorBuilder creates an AnomalyDetectorBuilder.
func MakeAnomalyDetectorBuilder[T scalar.Number[T]]() AnomalyDetectorBuilder[T] {
	return AnomalyDetectorBuilder[T]{}
}

// WithAnomalyLogger sets the logger to be used by the AnomalyDetector.
func (b AnomalyDetectorBuilder[T]) WithAnomalyLogger(
	l AnomalyLogger,
) AnomalyDetectorBuilder[T] {
	b.logger = l
	return b
}

// Build creates an AnomalyDetector.
func (b AnomalyDetectorBuilder[T]) Build() *AnomalyDetector[T] {
	if b.logger == nil {
		panic("AnomalyDetector requires an AnomalyLogger")
	}

	return &AnomalyDetector[T]{
		AnomalyLogger: b.logger,
	}
}
