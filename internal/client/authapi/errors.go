package authapi

import "fmt"

// APIError is a non-success answer from the auth service. Detail is the
// {detail} field of the error body when the service provided one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("auth api error: %d", e.Status)
}
