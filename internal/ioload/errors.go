package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// QueryError is returned when a key table cannot be read.
func QueryError(table string, err error) error {
	msg := `Cannot read table <em>%s</em>

<em>How to fix:</em>
  1. Make sure the schema is current: gnkey create
  2. Re-import the key: gnkey import <file> --force`

	return &gn.Error{
		Code: errcode.LoadQueryError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to read %s: %w", table, err),
	}
}
