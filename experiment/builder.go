package experiment

import (
	"github.com/rs/xid"
	"github.com/sarchlab/cohort/analysis"
	"github.com/sarchlab/cohort/ccmpp"
	"github.com/sarchlab/cohort/datarecording"
	"github.com/sarchlab/cohort/scalar"
	"github.com/sarchlab/cohort/tracing"
)

// Builder can be used to build an experiment.
type Builder[T scalar.Number[T]] struct {
	params         ccmpp.Params[T]
	hasParams      bool
	recordingOn    bool
	anomalyOn      bool
	outputFileName string

	recorderConfig    datarecording.RecorderConfig
	hasRecorderConfig bool
}

// MakeBuilder creates a new builder.
func MakeBuilder[T scalar.Number[T]]() Builder[T] {
	return Builder[T]{
		recordingOn: true,
		anomalyOn:   true,
	}
}

// WithParams sets the projection parameters of the experiment.
func (b Builder[T]) WithParams(params ccmpp.Params[T]) Builder[T] {
	b.params = params
	b.hasParams = true
	return b
}

// WithoutRecording sets the experiment to not record the step trace, the
// anomaly table, and the run metadata.
func (b Builder[T]) WithoutRecording() Builder[T] {
	b.recordingOn = false
	return b
}

// WithoutAnomalyDetection sets the experiment to not check the projection
// for numerical anomalies.
func (b Builder[T]) WithoutAnomalyDetection() Builder[T] {
	b.anomalyOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder[T]) WithOutputFileName(filename string) Builder[T] {
	b.outputFileName = filename
	return b
}

// WithRecorderConfig selects the recording backend. Without it, recording
// goes to a SQLite file.
func (b Builder[T]) WithRecorderConfig(
	config datarecording.RecorderConfig,
) Builder[T] {
	b.recorderConfig = config
	b.hasRecorderConfig = true
	return b
}

func (b Builder[T]) parametersMustBeValid() {
	if !b.hasParams {
		panic("experiment requires projection parameters")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}

	if !b.recordingOn && b.hasRecorderConfig {
		panic("recorder config cannot be set when recording is disabled")
	}
}

// Build builds the experiment. It returns an error when the projection
// parameters are invalid.
func (b Builder[T]) Build() (*Experiment[T], error) {
	b.parametersMustBeValid()

	proj, err := ccmpp.NewProjection(b.params)
	if err != nil {
		return nil, err
	}

	e := &Experiment[T]{
		id:   xid.New().String(),
		proj: proj,
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "cohort_run_" + e.id
		}
		e.outputPath = outputPath

		if b.hasRecorderConfig {
			config := b.recorderConfig
			if config.Path == "" {
				config.Path = outputPath
			}
			e.outputPath = config.Path
			e.dataRecorder = datarecording.NewWithConfig(config)
		} else {
			e.dataRecorder = datarecording.New(outputPath)
		}

		e.runLogger = datarecording.NewRunLogger(e.dataRecorder)

		e.stepTracer = tracing.NewStepTracer[T](e.dataRecorder)
		tracing.CollectStepTrace(proj, e.stepTracer)
	}

	if b.anomalyOn {
		e.collector = &analysis.AnomalyCollector{}

		fanout := &anomalyFanout{targets: []analysis.AnomalyLogger{
			e.collector,
		}}
		if b.recordingOn {
			fanout.targets = append(fanout.targets,
				analysis.NewRecorderAnomalyLogger(e.dataRecorder))
		}

		e.detector = analysis.MakeAnomalyDetectorBuilder[T]().
			WithAnomalyLogger(fanout).
			Build()
		analysis.CollectAnomalies(proj, e.detector)
	}

	return e, nil
}

// anomalyFanout forwards every anomaly entry to all targets.
type anomalyFanout struct {
	targets []analysis.AnomalyLogger
}

func (f *anomalyFanout) AddAnomalyEntry(entry analysis.AnomalyEntry) {
	for _, target := range f.targets {
		target.AddAnomalyEntry(entry)
	}
}
