package chi

import (
	"github.com/goccy/go-json"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Request and response shapes are the compatibility contract of the
// API and must not change field names or casing.

type preferencesRequest struct {
	MaxResults *int     `json:"maxResults"`
	MinRating  *float64 `json:"minRating"`
	Genres     []string `json:"genres"`
}

type recommendationsRequest struct {
	Query       string              `json:"query"`
	Preferences *preferencesRequest `json:"preferences"`
}

type recommendationsResponse struct {
	Success         bool                    `json:"success"`
	Query           string                  `json:"query"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	TotalResults    int                     `json:"total_results"`
	Timestamp       string                  `json:"timestamp"`
}

// Queries stays raw so a non-list value or non-string elements can
// be reported with the contract's messages instead of a generic
// decode failure.
type batchRequest struct {
	Queries json.RawMessage `json:"queries"`
}

// batchEntry is one per-query result. Valid entries always carry the
// recommendations key, even when empty; error entries carry only the
// echoed query and the error string, hence the pointer.
type batchEntry struct {
	Query           any                      `json:"query"`
	Recommendations *[]domain.Recommendation `json:"recommendations,omitempty"`
	Error           string                   `json:"error,omitempty"`
}

type batchResponse struct {
	Success   bool         `json:"success"`
	Results   []batchEntry `json:"results"`
	Timestamp string       `json:"timestamp"`
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type serverErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
