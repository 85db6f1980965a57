package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// ReparseError is returned when species names cannot be read, parsed or
// saved again.
func ReparseError(stage string, err error) error {
	msg := `Cannot reparse species names (<em>%s</em>)

<em>How to fix:</em>
  1. Make sure a key was imported: gnkey import KEY_FILE
  2. Check PostgreSQL logs for errors`

	return &gn.Error{
		Code: errcode.OptimizerReparseError,
		Msg:  msg,
		Vars: []any{stage},
		Err:  fmt.Errorf("reparse %s failed: %w", stage, err),
	}
}

// OrphanRemovalError is returned when dangling rows cannot be deleted.
func OrphanRemovalError(table string, err error) error {
	return &gn.Error{
		Code: errcode.OptimizerOrphanRemovalError,
		Msg:  "Cannot remove orphaned rows from <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("orphan removal in %s failed: %w", table, err),
	}
}

// VacuumError is returned when VACUUM ANALYZE fails.
func VacuumError(err error) error {
	return &gn.Error{
		Code: errcode.OptimizerVacuumError,
		Msg:  "Cannot update database statistics",
		Err:  fmt.Errorf("VACUUM ANALYZE failed: %w", err),
	}
}
