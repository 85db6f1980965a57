package iokeyfile

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// ReadFileError is returned when a key file cannot be opened.
func ReadFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read key file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

// FormatError is returned for files with unsupported extensions.
func FormatError(path string) error {
	msg := `Unknown key file format for <em>%s</em>

Supported extensions: .yaml, .yml, .toml, .sqlite, .sqlite3, .db`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyFileFormatError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: unknown format of %s", fn.Name(), path),
	}
}

// DecodeError is returned when the content of a key file is malformed.
func DecodeError(format Format, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyFileDecodeError,
		Msg:  "Cannot decode <em>%s</em> key data",
		Vars: []any{format.String()},
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
