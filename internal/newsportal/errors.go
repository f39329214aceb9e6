package newsportal

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by item operations when the referenced entity does not exist.
// Engine reads never return it; missing references are skipped there.
var ErrNotFound = errors.New("not found")

// ValidationError reports caller input that was rejected before any write happened.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func newValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
