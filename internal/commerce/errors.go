// internal/commerce/errors.go
package commerce

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the platform API, kept verbatim so the
// dashboard can show exactly what the platform said.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("platform API: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("platform API: %s", e.Status)
}

// AsAPIError unwraps err into an *APIError when the platform answered at all.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
