package domain

// Recommendation is a catalog book annotated with its similarity
// score for a particular query and a placeholder cover URL.
type Recommendation struct {
	Book
	Score float64 `json:"score"`
	Cover string  `json:"cover"`
}

// Preferences are optional post-retrieval filters applied to a
// ranked result set. Nil pointer fields mean "not requested".
type Preferences struct {
	MinRating *float64
	Genres    []string
}
