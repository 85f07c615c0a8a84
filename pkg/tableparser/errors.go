package tableparser

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
)

var (
	errNoYear  = errors.New("name row precedes any year heading")
	errOneName = errors.New("name row does not have surname and given name")
)

// StructureError is returned when the table body marker is missing.
func StructureError(marker string) error {
	msg := `Cannot find table body <em>%s</em> in the document`
	vars := []any{marker}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParserStructureError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %w: %s",
			fn.Name(), ErrNoTableBody, marker),
	}
}

// MalformedRowError is returned for a name row that cannot be recorded.
func MalformedRowError(num int, row string, err error) error {
	msg := `Malformed name row <em>#%d</em>: %s`
	vars := []any{num, row}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParserMalformedRowError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %w #%d: %w",
			fn.Name(), ErrMalformedRow, num, err),
	}
}
