package recommend

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Recommender ranks catalog books against a free-text query.
type Recommender interface {
	Recommend(ctx context.Context, query string, k int) ([]domain.Recommendation, error)
	Ready() bool
}
