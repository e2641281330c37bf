package resolver

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned when the operation name is not in the
// dispatch table.
var ErrUnknownOperation = errors.New("catalog: unknown operation")

// ValidationError reports a missing required argument. The handler is never
// partially executed: validation runs before any store call.
type ValidationError struct {
	// Field is the argument that was missing.
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: missing required argument %q", e.Field)
}

// missingArg builds a ValidationError for a required argument.
func missingArg(field string) error {
	return &ValidationError{Field: field}
}
