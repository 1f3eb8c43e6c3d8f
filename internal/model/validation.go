package model

import "fmt"

// ValidationError reports a value outside one of the closed sets.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
