package tracing

import (
	"database/sql"
	"fmt"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

// TraceQuery is used to define the trace rows to be queried. Not all the
// fields have to be set. If a field is empty, the criterion is ignored.
type TraceQuery struct {
	// Use Quantity to select the rows of a single flow.
	Quantity string

	// Enable step range selection.
	EnableStepRange bool

	// Use StartStep and EndStep to select the rows of a step range, both
	// ends included.
	StartStep, EndStep int
}

// A TraceReader reads a recorded step trace back from a SQLite database.
type TraceReader struct {
	*sql.DB
}

// NewTraceReader opens the recording database at filename.
func NewTraceReader(filename string) *TraceReader {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	return &TraceReader{
		DB: db,
	}
}

// ListQuantities returns the distinct quantities present in the trace.
func (r *TraceReader) ListQuantities() []string {
	var quantities []string

	rows, err := r.Query(
		"SELECT DISTINCT Quantity FROM " + StepTraceTable +
			" ORDER BY Quantity")
	if err != nil {
		panic(err)
	}
	defer rows.Close()

	for rows.Next() {
		var quantity string
		err := rows.Scan(&quantity)
		if err != nil {
			panic(err)
		}
		quantities = append(quantities, quantity)
	}

	return quantities
}

// ListEntries returns the trace rows that match the query, ordered by step
// and age group.
func (r *TraceReader) ListEntries(query TraceQuery) []StepTraceEntry {
	sqlStr := r.prepareEntryQueryStr(query)

	rows, err := r.Query(sqlStr)
	if err != nil {
		panic(err)
	}
	defer rows.Close()

	entries := []StepTraceEntry{}
	for rows.Next() {
		e := StepTraceEntry{}

		err := rows.Scan(
			&e.Step,
			&e.Quantity,
			&e.AgeGroup,
			&e.Value,
		)
		if err != nil {
			panic(err)
		}

		entries = append(entries, e)
	}

	return entries
}

func (r *TraceReader) prepareEntryQueryStr(query TraceQuery) string {
	sqlStr := `
		SELECT
			Step,
			Quantity,
			AgeGroup,
			Value
		FROM ` + StepTraceTable + `
		WHERE 1=1
	`

	if query.Quantity != "" {
		sqlStr += `
			AND Quantity = '` + query.Quantity + `'
		`
	}

	if query.EnableStepRange {
		sqlStr += fmt.Sprintf(
			"AND Step >= %d AND Step <= %d",
			query.StartStep,
			query.EndStep)
	}

	sqlStr += `
		ORDER BY Step, Quantity, AgeGroup
	`

	return sqlStr
}
