package sdk

import "fmt"

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shelfwise api: %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports whether the server rejected the request (4xx).
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
