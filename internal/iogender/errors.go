package iogender

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/namestat/pkg/errcode"
)

var (
	// ErrBadStatus means a service answered with a non-200 status.
	ErrBadStatus = errors.New("unexpected response status")

	// ErrEmptyAnswer means a service answered without data.
	ErrEmptyAnswer = errors.New("empty answer")
)

// ServiceError converts an error message from a service body to an error.
func ServiceError(msg string) error {
	return fmt.Errorf("service error: %s", msg)
}

// TranslateError is returned when a name cannot be translated.
func TranslateError(name string, err error) error {
	msg := `Cannot translate <em>%s</em>`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenderTranslateError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot translate '%s': %w",
			fn.Name(), name, err),
	}
}

// DetectError is returned when the detection service fails.
func DetectError(name string, err error) error {
	msg := `Cannot detect gender of <em>%s</em>`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenderDetectError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot detect gender of '%s': %w",
			fn.Name(), name, err),
	}
}
