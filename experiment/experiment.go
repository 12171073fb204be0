// Package experiment assembles a projection with its recording stack so that
// one call runs the projection, stores the step trace, and checks for
// anomalies.
package experiment

import (
	"strconv"

	"github.com/sarchlab/cohort/analysis"
	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/datarecording"
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/tracing"
)

// An Experiment provides the services required to run one projection.
type Experiment[T scalar.Number[T]] struct {
	id         string
	outputPath string

	proj         *ccmpp.Projection[T]
	dataRecorder datarecording.DataRecorder
	runLogger    *datarecording.RunLogger
	stepTracer   *tracing.StepTracer[T]
	detector     *analysis.AnomalyDetector[T]
	collector    *analysis.AnomalyCollector
}

// ID returns the unique ID of the experiment.
func (e *Experiment[T]) ID() string {
	return e.id
}

// OutputPath returns the path prefix of the recording. It is empty when
// recording is disabled.
func (e *Experiment[T]) OutputPath() string {
	return e.outputPath
}

// Projection returns the projection of the experiment.
func (e *Experiment[T]) Projection() *ccmpp.Projection[T] {
	return e.proj
}

// DataRecorder returns the data recorder of the experiment. It is nil when
// recording is disabled.
func (e *Experiment[T]) DataRecorder() datarecording.DataRecorder {
	return e.dataRecorder
}

// Run projects every step and records the metadata of the run.
func (e *Experiment[T]) Run() {
	if e.runLogger != nil {
		e.runLogger.Start()
		e.runLogger.AddProperty(
			"Age Groups", strconv.Itoa(e.proj.NAges()))
		e.runLogger.AddProperty(
			"Projection Steps", strconv.Itoa(e.proj.NSteps()))
	}

	e.proj.Run()

	if e.runLogger != nil {
		e.runLogger.End()
	}
}

// AnomalyCount returns the number of anomalies found so far. It is zero when
// anomaly detection is disabled.
func (e *Experiment[T]) AnomalyCount() int {
	if e.detector == nil {
		return 0
	}

	return e.detector.Count()
}

// Anomalies returns the anomalies found so far, in reporting order.
func (e *Experiment[T]) Anomalies() []analysis.AnomalyEntry {
	if e.collector == nil {
		return nil
	}

	return e.collector.Entries()
}

// Terminate terminates the experiment and closes the recording.
func (e *Experiment[T]) Terminate() {
	if e.dataRecorder != nil {
		e.dataRecorder.Close()
	}
}
