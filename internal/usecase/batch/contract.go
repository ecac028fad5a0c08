package batch

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Recommender produces ranked hits for a single query.
type Recommender interface {
	Recommend(ctx context.Context, query string, k int) ([]domain.Recommendation, error)
}
