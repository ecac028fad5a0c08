// Package batch runs several recommendation queries in one request
// with per-entry error reporting: a bad query taints only its own
// result entry, never its siblings.
package batch

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shelfwise/shelfwise/internal/domain"
	dombatch "github.com/shelfwise/shelfwise/internal/domain/batch"
	"github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

const (
	// MaxQueries is the maximum number of queries per batch request.
	MaxQueries = 10
	// PerQueryTopK is the fixed result count for every batch entry.
	PerQueryTopK = 5
)

// Service handles batch recommendations.
type Service struct {
	engine     Recommender
	maxQueries int
}

// New creates a batch service.
func New(engine Recommender) *Service {
	return &Service{engine: engine, maxQueries: MaxQueries}
}

// WithMaxQueries configures the maximum batch size.
func (s *Service) WithMaxQueries(n int) *Service {
	if n > 0 {
		s.maxQueries = n
	}
	return s
}

// MaxQueries returns the configured batch size limit.
func (s *Service) MaxQueries() int { return s.maxQueries }

// Recommend processes each query independently. Entries shorter than
// two characters after trimming fail with ErrInvalidQuery in place;
// valid entries each get PerQueryTopK recommendations.
func (s *Service) Recommend(ctx context.Context, queries []string) []dombatch.Result {
	results := make([]dombatch.Result, len(queries))

	if len(queries) > s.maxQueries {
		for i, q := range queries {
			results[i] = dombatch.NewError(q,
				fmt.Errorf("batch size exceeds %d: %w", s.maxQueries, domain.ErrInvalidQuery))
		}
		return results
	}

	for i, q := range queries {
		trimmed := strings.TrimSpace(q)
		if utf8.RuneCountInString(trimmed) < recommend.MinQueryLen {
			results[i] = dombatch.NewError(q, domain.ErrInvalidQuery)
			continue
		}

		recs, err := s.engine.Recommend(ctx, trimmed, PerQueryTopK)
		if err != nil {
			results[i] = dombatch.NewError(q, fmt.Errorf("recommend: %w", err))
			continue
		}
		results[i] = dombatch.NewOK(q, recs)
	}

	return results
}
