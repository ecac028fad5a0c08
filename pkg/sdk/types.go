package sdk

// Recommendation is one scored catalog hit as returned by the server.
type Recommendation struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Year        int     `json:"year"`
	Score       float64 `json:"score"`
	Cover       string  `json:"cover"`
}

// Preferences narrows a recommendation query.
type Preferences struct {
	MaxResults *int     `json:"maxResults,omitempty"`
	MinRating  *float64 `json:"minRating,omitempty"`
	Genres     []string `json:"genres,omitempty"`
}

// Health is the server health report.
type Health struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp"`
}

// BatchEntry is the outcome of one query within a batch request.
// Error is empty on success.
type BatchEntry struct {
	Query           string           `json:"query"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Error           string           `json:"error,omitempty"`
}

type recommendationsRequest struct {
	Query       string       `json:"query"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type recommendationsResponse struct {
	Success         bool             `json:"success"`
	Query           string           `json:"query"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalResults    int              `json:"total_results"`
	Timestamp       string           `json:"timestamp"`
}

type batchRequest struct {
	Queries []string `json:"queries"`
}

type batchResponse struct {
	Success   bool         `json:"success"`
	Results   []BatchEntry `json:"results"`
	Timestamp string       `json:"timestamp"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
