package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := `Cannot connect to PostgreSQL at <em>%s:%d</em>

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database <em>%s</em> does not exist
  - Wrong credentials for user <em>%s</em>

<em>How to fix:</em>
  1. Check that PostgreSQL is running: pg_isready -h %s
  2. Create the database: createdb %s
  3. Review ~/.config/gnkey/config.yaml or GNKEY_DATABASE_* variables`

	vars := []any{host, port, database, user, host, database}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"failed to connect to %s:%d/%s: %w", host, port, database, err),
	}
}

// NotConnectedError is returned when an operation needs a connection
// that was not established.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database operation attempted without connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError is returned when checking for tables fails.
func TableCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Cannot check database tables",
		Err:  fmt.Errorf("failed to check tables: %w", err),
	}
}

// EmptyDatabaseError is returned when the database has no key tables.
func EmptyDatabaseError(host, database string) error {
	msg := `Database <em>%s</em> at <em>%s</em> has no key data

<em>How to fix:</em>
  1. Create the schema: gnkey create
  2. Import a key: gnkey import <file>`

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: []any{database, host},
		Err:  fmt.Errorf("database %s has no tables", database),
	}
}

// QueryTablesError is returned when listing tables fails.
func QueryTablesError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  "Cannot list database tables",
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError is returned when reading table names fails.
func ScanTableError(err error) error {
	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  "Cannot read database table names",
		Err:  fmt.Errorf("failed to scan table names: %w", err),
	}
}

// DropTableError is returned when a table cannot be dropped.
func DropTableError(table string, err error) error {
	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  "Cannot drop table <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
