package worldbank

import (
	"errors"
	"fmt"
)

// ErrInvalidResponseShape marks a provider payload that is not the expected
// two-element [metadata, dataPoints] array.
var ErrInvalidResponseShape = errors.New("invalid provider response shape")

// StatusError is returned when the provider answers with a non-success
// HTTP status.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("world bank api error: %d", e.Status)
}
