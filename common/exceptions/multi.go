package exceptions

import (
	"strings"

	"github.com/sagernet/sing-utfx/common"
)

type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	return "multi error: (" + strings.Join(common.Map(e.errors, error.Error), " | ") + ")"
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

// Errors joins the non-nil errors. It returns nil when none are left and
// the error itself when only one is.
func Errors(errors ...error) error {
	errors = common.Filter(errors, func(it error) bool {
		return it != nil
	})
	switch len(errors) {
	case 0:
		return nil
	case 1:
		return errors[0]
	}
	return &multiError{errors: errors}
}
