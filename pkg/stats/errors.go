package stats

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
)

// KeyNotFoundError is returned for a year that is not in the document.
func KeyNotFoundError(year string) error {
	msg := `Year <em>%s</em> is not found in the document`
	vars := []any{year}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatsYearNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w: '%s'", fn.Name(), ErrYearNotFound, year),
	}
}
