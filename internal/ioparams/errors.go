package ioparams

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// LoadError is returned when a parameter cannot be read or created.
func LoadError(name string, err error) error {
	return &gn.Error{
		Code: errcode.ParamLoadError,
		Msg:  "Cannot read parameter <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("failed to get parameter %s: %w", name, err),
	}
}

// SaveError is returned when a parameter cannot be stored.
func SaveError(name string, err error) error {
	return &gn.Error{
		Code: errcode.ParamSaveError,
		Msg:  "Cannot save parameter <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("failed to set parameter %s: %w", name, err),
	}
}

// UnknownError is returned for names that are not ranking weights
// or for values that are not non-negative numbers.
func UnknownError(name, value string) error {
	msg := `Cannot set <em>%s</em> to <em>%s</em>

Known parameters: coverage_weight, ease_of_observability_weight,
length_weight. Values must be non-negative numbers.`

	return &gn.Error{
		Code: errcode.ParamUnknownError,
		Msg:  msg,
		Vars: []any{name, value},
		Err:  fmt.Errorf("invalid parameter %s=%s", name, value),
	}
}
