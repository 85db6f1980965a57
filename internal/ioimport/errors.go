package ioimport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// InsertError is returned when key data cannot be written.
func InsertError(table string, err error) error {
	msg := `Cannot write key data into <em>%s</em>

<em>How to fix:</em>
  1. Make sure the schema exists: gnkey create
  2. Check database logs for constraint violations`

	return &gn.Error{
		Code: errcode.ImportInsertError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to import into %s: %w", table, err),
	}
}
