package datarecording

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store data.
type DataRecorder interface {
	// CreateTable creates a new table named after the given name, shaped
	// after the fields of the sample entry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData writes an entry into a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all created tables.
	ListTables() []string

	// Flush writes all buffered entries into the database.
	Flush()

	// Close flushes and releases the database connection.
	Close() error
}

// New creates a DataRecorder backed by a SQLite file at path plus the
// ".sqlite3" suffix. If path is empty, a unique name is generated. The file
// must not exist yet. Buffered entries are flushed at exit.
func New(path string) DataRecorder {
	w := &sqliteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

// NewWithDB creates a DataRecorder on an already opened database.
func NewWithDB(db *sql.DB) DataRecorder {
	w := &sqliteWriter{
		DB:        db,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

// sqliteWriter writes data into a SQLite database in batches.
type sqliteWriter struct {
	*sql.DB

	dbName     string
	tables     map[string]*table
	batchSize  int
	entryCount int
}

func (w *sqliteWriter) init() {
	if w.dbName == "" {
		w.dbName = "cohort_recording_" + xid.New().String()
	}

	filename := w.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	fmt.Fprintf(os.Stderr, "Database created for recording: %s\n", filename)

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	w.DB = db
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	mustHavePlainFields(sampleEntry)

	fields := strings.Join(fieldNames(sampleEntry), ", \n\t")
	w.mustExecute(`CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`)

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
	}
}

func (w *sqliteWriter) InsertData(tableName string, entry any) {
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

func (w *sqliteWriter) ListTables() []string {
	tables := make([]string, 0, len(w.tables))
	for table := range w.tables {
		tables = append(tables, table)
	}

	return tables
}

func (w *sqliteWriter) Flush() {
	if w.entryCount == 0 {
		return
	}

	w.mustExecute("BEGIN TRANSACTION")
	defer w.mustExecute("COMMIT TRANSACTION")

	for tableName, table := range w.tables {
		if len(table.entries) == 0 {
			continue
		}

		stmt := w.prepareInsert(tableName, table.entries[0])

		for _, entry := range table.entries {
			values := []any{}

			fields := reflect.ValueOf(entry)
			for i := 0; i < fields.NumField(); i++ {
				values = append(values, fields.Field(i).Interface())
			}

			_, err := stmt.Exec(values...)
			if err != nil {
				panic(err)
			}
		}

		table.entries = nil

		stmt.Close()
	}

	w.entryCount = 0
}

func (w *sqliteWriter) Close() error {
	w.Flush()

	return w.DB.Close()
}

func (w *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := w.Exec(query)
	if err != nil {
		fmt.Printf("Failed to execute: %s\n", query)
		panic(err)
	}

	return res
}

func (w *sqliteWriter) prepareInsert(table string, sampleEntry any) *sql.Stmt {
	placeholders := fieldNames(sampleEntry)
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt, err := w.Prepare("INSERT INTO " + table +
		" VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		panic(err)
	}

	return stmt
}

func fieldNames(entry any) []string {
	t := reflect.TypeOf(entry)

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, t.Field(i).Name)
	}

	return names
}

func mustHavePlainFields(entry any) {
	t := reflect.TypeOf(entry)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !isAllowedType(field.Type.Kind()) {
			panic(fmt.Sprintf(
				"field %s is not a plain value type", field.Name))
		}
	}
}

func isAllowedType(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32,
		reflect.Float64,
		reflect.Complex64,
		reflect.Complex128,
		reflect.String,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
