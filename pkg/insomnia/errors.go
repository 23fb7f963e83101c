package insomnia

import (
	"errors"
	"fmt"
)

// ErrTooLarge is wrapped when an upload exceeds the configured size limit.
var ErrTooLarge = errors.New("source document too large")

// InvalidSourceDocumentError reports a document that cannot be handed to the converter:
// not JSON, not an object, or missing the resources array.
type InvalidSourceDocumentError struct {
	Reason string
	Err    error
}

func (e *InvalidSourceDocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid source document: %s: %v", e.Reason, e.Err)
	}
	return "invalid source document: " + e.Reason
}

func (e *InvalidSourceDocumentError) Unwrap() error {
	return e.Err
}

// IsInvalid reports whether err is (or wraps) an InvalidSourceDocumentError.
func IsInvalid(err error) bool {
	var ie *InvalidSourceDocumentError
	return errors.As(err, &ie)
}
