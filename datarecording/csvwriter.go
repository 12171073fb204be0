package datarecording

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// csvWriter writes each table into its own CSV file.
type csvWriter struct {
	path string

	files      map[string]*os.File
	tables     map[string]*table
	batchSize  int
	entryCount int
}

// NewCSV creates a DataRecorder that stores each table in a file named after
// the given path plus the table name. If path is empty, a unique name is
// generated. The files must not exist yet. Buffered entries are flushed at
// exit.
func NewCSV(path string) DataRecorder {
	if path == "" {
		path = "cohort_recording_" + xid.New().String()
	}

	w := &csvWriter{
		path:      path,
		files:     make(map[string]*os.File),
		tables:    make(map[string]*table),
		batchSize: 1000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

func (w *csvWriter) CreateTable(tableName string, sampleEntry any) {
	mustHavePlainFields(sampleEntry)

	filename := w.path + "_" + tableName + ".csv"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(file, "%s\n", strings.Join(fieldNames(sampleEntry), ", "))

	w.files[tableName] = file
	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
	}
}

func (w *csvWriter) InsertData(tableName string, entry any) {
	table, exists := w.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != table.structType {
		panic(fmt.Sprintf("entry type %T does not match table %s",
			entry, tableName))
	}

	table.entries = append(table.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		w.Flush()
	}
}

func (w *csvWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for table := range w.tables {
		tables = append(tables, table)
	}

	return tables
}

func (w *csvWriter) Flush() {
	if w.entryCount == 0 {
		return
	}

	for tableName, table := range w.tables {
		file := w.files[tableName]

		for _, entry := range table.entries {
			fields := reflect.ValueOf(entry)

			values := make([]string, fields.NumField())
			for i := 0; i < fields.NumField(); i++ {
				values[i] = fmt.Sprintf("%v", fields.Field(i).Interface())
			}

			fmt.Fprintf(file, "%s\n", strings.Join(values, ", "))
		}

		table.entries = nil
	}

	w.entryCount = 0
}

func (w *csvWriter) Close() error {
	w.Flush()

	for _, file := range w.files {
		err := file.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
