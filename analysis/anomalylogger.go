package analysis

import (
	"github.com/sarchlab/cohort/datarecording"
)

// A RecorderAnomalyLogger stores anomaly entries through a DataRecorder so
// that they end up next to the step trace of the run.
type RecorderAnomalyLogger struct {
	backend datarecording.DataRecorder
}

// NewRecorderAnomalyLogger creates a logger that writes into the anomaly
// table of the recorder. The table is created immediately.
func NewRecorderAnomalyLogger(
	recorder datarecording.DataRecorder,
) *RecorderAnomalyLogger {
	recorder.CreateTable(AnomalyTable, AnomalyEntry{})

	return &RecorderAnomalyLogger{backend: recorder}
}

// AddAnomalyEntry adds an anomaly entry to the recorder.
func (l *RecorderAnomalyLogger) AddAnomalyEntry(entry AnomalyEntry) {
	l.backend.InsertData(AnomalyTable, entry)
}

// An AnomalyCollector keeps anomaly entries in memory.
type AnomalyCollector struct {
	entries []AnomalyEntry
}

// AddAnomalyEntry appends an anomaly entry to the collector.
func (c *AnomalyCollector) AddAnomalyEntry(entry AnomalyEntry) {
	c.entries = append(c.entries, entry)
}

// Entries returns the collected entries in the order they were reported.
func (c *AnomalyCollector) Entries() []AnomalyEntry {
	return c.entries
}
