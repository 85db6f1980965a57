package ioreport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// FormatError is returned for an unknown report format name.
func FormatError(name string) error {
	return &gn.Error{
		Code: errcode.ReportFormatError,
		Msg:  "Unknown output format <em>%s</em>, use compact, pretty or text",
		Vars: []any{name},
		Err:  fmt.Errorf("unknown report format %q", name),
	}
}
