package dataset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/pkg/errcode"
)

// PileNotFoundError is returned when a pile slug is unknown.
func PileNotFoundError(slug string) error {
	msg := "Pile <em>%s</em> not found"
	vars := []any{slug}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: pile %q not found", fn.Name(), slug),
	}
}

// SpeciesNotFoundError is returned when a species id is unknown, or when
// it does not belong to the pile given by slug.
func SpeciesNotFoundError(id int, slug string) error {
	msg := "Species <em>%d</em> not found"
	vars := []any{id}
	if slug != "" {
		msg = "Species <em>%d</em> not found in pile <em>%s</em>"
		vars = append(vars, slug)
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpeciesNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: species %d not found", fn.Name(), id),
	}
}

// CharacterNotFoundError is returned when a character id is unknown.
func CharacterNotFoundError(id int) error {
	msg := "Character <em>%d</em> not found"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CharacterNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: character %d not found", fn.Name(), id),
	}
}

// ValueNotFoundError is returned when a character value id is unknown.
func ValueNotFoundError(id int) error {
	msg := "Character value <em>%d</em> not found"
	vars := []any{id}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ValueNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: character value %d not found", fn.Name(), id),
	}
}

// InvalidDataError is returned when key data break a table invariant.
func InvalidDataError(reason string) error {
	msg := "Key data are invalid: %s"
	vars := []any{reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.KeyDataInvalidError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: invalid key data: %s", fn.Name(), reason),
	}
}
