package iocache

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// ReadError is returned when a snapshot exists but cannot be decoded.
func ReadError(path string, err error) error {
	msg := `Cannot read dataset snapshot <em>%s</em>

Run the command with <em>--refresh</em> to rebuild it.`

	return &gn.Error{
		Code: errcode.CacheReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to read snapshot %s: %w", path, err),
	}
}

// WriteError is returned when a snapshot cannot be saved or removed.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.CacheWriteError,
		Msg:  "Cannot write dataset snapshot <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("failed to write snapshot %s: %w", path, err),
	}
}
