package types

import "fmt"

// InvalidEnumError reports a value outside one of the closed enum sets.
// Scoring and dispatch logic assume closed enums, so these are rejected
// at construction time rather than tolerated downstream.
type InvalidEnumError struct {
	Field string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s value: %q", e.Field, e.Value)
}
