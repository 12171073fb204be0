package datarecording

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RunInfo is one recorded property of a program run.
type RunInfo struct {
	Property string
	Value    string
}

// A RunLogger stores the metadata of one program run next to the recorded
// data, in the run_info table.
type RunLogger struct {
	tableName string
	recorder  DataRecorder
	entries   []RunInfo
}

// NewRunLogger creates a RunLogger writing through the given recorder.
func NewRunLogger(recorder DataRecorder) *RunLogger {
	l := &RunLogger{
		tableName: "run_info",
		recorder:  recorder,
	}

	recorder.CreateTable(l.tableName, RunInfo{})

	return l
}

// Start captures the start time, the command line, and the working
// directory.
func (l *RunLogger) Start() {
	startTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	l.entries = append(l.entries, RunInfo{"Start Time", startTime})

	cmd := strings.Join(os.Args, " ")
	l.entries = append(l.entries, RunInfo{"Command", cmd})

	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}

	l.entries = append(l.entries, RunInfo{"Working Directory", filepath.Dir(ex)})
}

// AddProperty records an extra property of the run.
func (l *RunLogger) AddProperty(property, value string) {
	l.entries = append(l.entries, RunInfo{property, value})
}

// End writes the collected properties into the database, followed by the end
// time.
func (l *RunLogger) End() {
	for _, entry := range l.entries {
		l.recorder.InsertData(l.tableName, entry)
	}

	endTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	l.recorder.InsertData(l.tableName, RunInfo{"End Time", endTime})

	l.entries = nil

	l.recorder.Flush()
}
