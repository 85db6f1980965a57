package ioschema

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// NotConnectedError is returned when the key tables are created or
// migrated before the pool is open.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Key tables cannot be changed without a database connection",
		Err:  errors.New("schema manager has no connection pool"),
	}
}

// GORMConnectionError wraps failures of opening GORM on top of the
// pgx pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open the key database for schema changes

<em>How to fix:</em>
  1. Check the database section of gnkey.yaml
  2. Run <em>gnkey create</em> again`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("gorm over pgx pool: %w", err),
	}
}

// CreateSchemaError wraps failures of creating the key tables.
func CreateSchemaError(err error) error {
	msg := `Cannot create the key tables

<em>Possible causes:</em>
  - The database user lacks CREATE permission
  - Tables with the same names (<em>piles</em>, <em>species</em>,
    <em>character_values</em>) exist with another layout

<em>How to fix:</em>
  1. Grant CREATE on the public schema to the gnkey user
  2. Drop the old tables with <em>gnkey create --force</em>`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("create key tables: %w", err),
	}
}

// MigrateSchemaError wraps failures of bringing existing key tables up
// to date.
func MigrateSchemaError(err error) error {
	msg := `Cannot update the key tables

<em>Possible causes:</em>
  - Rows in <em>taxon_character_values</em> or <em>character_values</em>
    do not fit a new column type
  - The <em>parameters</em> table was altered by hand

<em>How to fix:</em>
  1. Set GNKEY_LOG_LEVEL=debug and run <em>gnkey migrate</em> again
  2. Recreate the tables with <em>gnkey create --force</em> and import the key again`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("migrate key tables: %w", err),
	}
}

// IndexError wraps a failed index statement of a key table.
func IndexError(table string, err error) error {
	msg := `Cannot index key table <em>%s</em>

<em>How to fix:</em>
  1. Run <em>gnkey migrate</em> to restore the table layout
  2. Rerun <em>gnkey optimize</em> after the import finishes`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("index %s: %w", table, err),
	}
}
