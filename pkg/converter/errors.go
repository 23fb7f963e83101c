package converter

import (
	"errors"
	"fmt"
)

// MalformedRequestBodyError is returned when a body-bearing request has body text
// that does not parse as JSON. The conversion is abandoned as a whole.
type MalformedRequestBodyError struct {
	RequestID   string
	RequestName string
	Err         error
}

func (e *MalformedRequestBodyError) Error() string {
	return fmt.Sprintf("malformed request body in request %q (%s): %v", e.RequestName, e.RequestID, e.Err)
}

func (e *MalformedRequestBodyError) Unwrap() error {
	return e.Err
}

// IsMalformedBody reports whether err is (or wraps) a MalformedRequestBodyError.
func IsMalformedBody(err error) bool {
	var me *MalformedRequestBodyError
	return errors.As(err, &me)
}
