package datarecording

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"
)

// RecorderConfig selects and parameterizes a recording backend.
type RecorderConfig struct {
	// Type picks the backend, one of "sqlite", "csv", or "clickhouse". An
	// empty type means sqlite.
	Type string

	// Path is the output path without the backend file suffix.
	Path string

	// ConnStr is a clickhouse connection string of the form
	// "clickhouse://host:port/database?username=u&password=p". When set,
	// it takes precedence over the individual fields below.
	ConnStr string

	Host     string
	Port     int
	Database string
	Username string
	Password string

	// BatchSize is the number of buffered entries that triggers a flush.
	// Zero means the backend default.
	BatchSize int
}

// NewWithConfig creates a DataRecorder for the configured backend.
func NewWithConfig(config RecorderConfig) DataRecorder {
	switch config.Type {
	case "", "sqlite":
		batchSize := config.BatchSize
		if batchSize == 0 {
			batchSize = 100000
		}

		w := &sqliteWriter{
			dbName:    config.Path,
			batchSize: batchSize,
			tables:    make(map[string]*table),
		}

		w.init()

		atexit.Register(func() { w.Flush() })

		return w

	case "csv":
		return NewCSV(config.Path)

	case "clickhouse":
		if config.ConnStr != "" {
			host, port, database, username, password, err :=
				parseClickHouseConnStr(config.ConnStr)
			if err != nil {
				panic(err)
			}

			return NewClickHouse(
				host, port, database, username, password, config.BatchSize)
		}

		return NewClickHouse(config.Host, config.Port, config.Database,
			config.Username, config.Password, config.BatchSize)

	default:
		panic(fmt.Sprintf("unknown recorder type %q", config.Type))
	}
}

func parseClickHouseConnStr(connStr string) (
	host string,
	port int,
	database, username, password string,
	err error,
) {
	u, err := url.Parse(connStr)
	if err != nil {
		return "", 0, "", "", "", err
	}

	if u.Scheme != "clickhouse" {
		return "", 0, "", "", "",
			fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return "", 0, "", "", "", err
	}

	port, err = strconv.Atoi(portStr)
	if err != nil {
		return "", 0, "", "", "", err
	}

	database = strings.TrimPrefix(u.Path, "/")
	username = u.Query().Get("username")
	password = u.Query().Get("password")

	return host, port, database, username, password, nil
}
