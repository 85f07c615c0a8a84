package gender

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
)

// ClassificationError is returned when external services cannot classify
// a name.
func ClassificationError(name string, err error) error {
	msg := `Cannot classify gender of <em>%s</em>`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenderClassificationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %w '%s': %w",
			fn.Name(), ErrClassification, name, err),
	}
}
