package adoptapet

import (
	"errors"
	"fmt"
)

// ErrNoData indicates the API returned an empty response body
var ErrNoData = errors.New("pet search returned no data")

// StatusError represents a non-200 response from the pet-search API
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pet search error: HTTP %d", e.StatusCode)
}
