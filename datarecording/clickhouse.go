package datarecording

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/tebeka/atexit"
)

// clickHouseRecorder writes data into a ClickHouse server in batches. Tables
// are derived from the fields of the sample entry, like the SQLite backend,
// with the first field as the sorting key.
type clickHouseRecorder struct {
	conn      clickhouse.Conn
	mu        sync.Mutex
	batchSize int

	tables     map[string]*table
	entryCount int
}

// NewClickHouse creates a DataRecorder that writes into a ClickHouse
// database over the native protocol. It panics if the server cannot be
// reached.
func NewClickHouse(
	host string,
	port int,
	database, username, password string,
	batchSize int,
) DataRecorder {
	if batchSize == 0 {
		batchSize = 100000
	}

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{fmt.Sprintf("%s:%d", host, port)},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		DialTimeout:      time.Second * 30,
		MaxOpenConns:     5,
		MaxIdleConns:     5,
		ConnMaxLifetime:  time.Hour,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
		BlockBufferSize:  10,
	})
	if err != nil {
		panic(fmt.Errorf("failed to connect to ClickHouse: %w", err))
	}

	if err := conn.Ping(context.Background()); err != nil {
		panic(fmt.Errorf("failed to ping ClickHouse: %w", err))
	}

	r := &clickHouseRecorder{
		conn:      conn,
		batchSize: batchSize,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { r.Flush() })

	return r
}

func (r *clickHouseRecorder) CreateTable(tableName string, sampleEntry any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mustHavePlainFields(sampleEntry)

	err := r.conn.Exec(context.Background(),
		clickHouseDDL(tableName, sampleEntry))
	if err != nil {
		panic(fmt.Errorf("failed to create table %s: %w", tableName, err))
	}

	r.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
	}
}

func (r *clickHouseRecorder) InsertData(tableName string, entry any) {
	r.mu.Lock()

	table, exists := r.tables[tableName]
	if !exists {
		r.mu.Unlock()
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	if reflect.TypeOf(entry) != table.structType {
		r.mu.Unlock()
		panic(fmt.Sprintf("entry type %T does not match table %s",
			entry, tableName))
	}

	table.entries = append(table.entries, entry)

	r.entryCount++
	if r.entryCount >= r.batchSize {
		r.mu.Unlock()
		r.Flush()

		return
	}

	r.mu.Unlock()
}

func (r *clickHouseRecorder) ListTables() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tables := make([]string, 0, len(r.tables))
	for name := range r.tables {
		tables = append(tables, name)
	}

	return tables
}

func (r *clickHouseRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entryCount == 0 {
		return
	}

	ctx := context.Background()

	for tableName, table := range r.tables {
		if len(table.entries) == 0 {
			continue
		}

		r.sendBatch(ctx, tableName, table)
	}

	r.entryCount = 0
}

func (r *clickHouseRecorder) sendBatch(
	ctx context.Context,
	tableName string,
	table *table,
) {
	batch, err := r.conn.PrepareBatch(ctx,
		fmt.Sprintf("INSERT INTO %s", tableName))
	if err != nil {
		panic(fmt.Errorf("failed to prepare batch for %s: %w",
			tableName, err))
	}

	for _, entry := range table.entries {
		err = batch.Append(clickHouseValues(entry)...)
		if err != nil {
			panic(fmt.Errorf("failed to append to batch: %w", err))
		}
	}

	err = batch.Send()
	if err != nil {
		panic(fmt.Errorf("failed to send batch: %w", err))
	}

	table.entries = nil
}

// Close flushes remaining data and closes the connection.
func (r *clickHouseRecorder) Close() error {
	r.Flush()

	err := r.conn.Close()
	if err != nil {
		return fmt.Errorf("failed to close ClickHouse connection: %w", err)
	}

	return nil
}

// clickHouseDDL maps the fields of the sample entry onto a MergeTree table
// sorted by the first field.
func clickHouseDDL(tableName string, sampleEntry any) string {
	t := reflect.TypeOf(sampleEntry)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		columns = append(columns,
			"\t"+field.Name+" "+clickHouseColumnType(field.Type.Kind()))
	}

	return "CREATE TABLE IF NOT EXISTS " + tableName + " (\n" +
		strings.Join(columns, ",\n") + "\n" +
		") ENGINE = MergeTree()\n" +
		"ORDER BY " + t.Field(0).Name
}

func clickHouseColumnType(kind reflect.Kind) string {
	switch kind {
	case reflect.Bool:
		return "Bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return "Int64"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return "UInt64"
	case reflect.Float32, reflect.Float64:
		return "Float64"
	case reflect.String:
		return "String"
	default:
		panic(fmt.Sprintf("unsupported column kind %s", kind))
	}
}

// clickHouseValues extracts the fields of an entry with the native Go types
// the driver expects for each column type.
func clickHouseValues(entry any) []any {
	v := reflect.ValueOf(entry)

	values := make([]any, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Kind() {
		case reflect.Bool:
			values = append(values, field.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
			reflect.Int64:
			values = append(values, field.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
			reflect.Uint64, reflect.Uintptr:
			values = append(values, field.Uint())
		case reflect.Float32, reflect.Float64:
			values = append(values, field.Float())
		case reflect.String:
			values = append(values, field.String())
		default:
			panic(fmt.Sprintf("unsupported field kind %s", field.Kind()))
		}
	}

	return values
}
