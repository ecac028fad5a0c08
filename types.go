package shelfwise

import "github.com/shelfwise/shelfwise/internal/domain"

// Book is a catalog record.
type Book struct {
	Title       string
	Author      string
	Genre       string
	Description string
	Rating      float64
	Year        int
}

// Recommendation is a scored catalog hit.
type Recommendation struct {
	Book
	Score float64
	Cover string
}

// RecommendOptions configures a single recommendation query.
// MaxResults <= 0 means the engine default; values above the engine
// maximum are clamped.
type RecommendOptions struct {
	MaxResults int
	MinRating  *float64
	Genres     []string
}

// BatchResult is the outcome of one query within a batch. Err is nil
// on success.
type BatchResult struct {
	Query           string
	Recommendations []Recommendation
	Err             error
}

// HealthStatus mirrors the server health report.
type HealthStatus struct {
	Status      string // "healthy" or "degraded"
	ModelLoaded bool
}

func toBooks(books []Book) []domain.Book {
	out := make([]domain.Book, len(books))
	for i, b := range books {
		out[i] = domain.Book{
			Title:       b.Title,
			Author:      b.Author,
			Genre:       b.Genre,
			Description: b.Description,
			Rating:      b.Rating,
			Year:        b.Year,
		}
	}
	return out
}

func fromRecommendations(recs []domain.Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	for i, r := range recs {
		out[i] = Recommendation{
			Book: Book{
				Title:       r.Title,
				Author:      r.Author,
				Genre:       r.Genre,
				Description: r.Description,
				Rating:      r.Rating,
				Year:        r.Year,
			},
			Score: r.Score,
			Cover: r.Cover,
		}
	}
	return out
}
