// Package recommend implements the similarity query engine: it
// projects a query into the fitted vector space, scores every
// catalog book by cosine similarity, and returns the top-k hits
// above a minimum similarity threshold.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shelfwise/shelfwise/internal/domain"
)

const (
	// DefaultTopK is the result count when the caller asks for none.
	DefaultTopK = 10
	// MaxTopK caps the result count per query.
	MaxTopK = 20
	// MinSimilarity is the strict lower bound a hit must exceed.
	MinSimilarity = 0.01
	// MinQueryLen is the minimum trimmed query length in runes.
	MinQueryLen = 2
)

// Service is the query engine. It holds a fitted Model with shared
// read-only access; a Service built without a model starts degraded
// and rejects queries with ErrEngineNotReady.
type Service struct {
	model *Model
}

// New creates the engine. model may be nil (not ready).
func New(model *Model) *Service {
	return &Service{model: model}
}

var _ Recommender = (*Service)(nil)

// Ready reports whether a fitted model is loaded.
func (s *Service) Ready() bool { return s.model != nil }

// Recommend returns up to k catalog books ranked by descending
// cosine similarity to query. Hits at or below MinSimilarity are
// excluded entirely; ties break by ascending catalog index so the
// ordering is deterministic. Fewer than k hits are never padded.
func (s *Service) Recommend(_ context.Context, query string, k int) ([]domain.Recommendation, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < MinQueryLen {
		return nil, fmt.Errorf("query must be at least %d characters: %w", MinQueryLen, domain.ErrInvalidQuery)
	}
	if s.model == nil {
		return nil, domain.ErrEngineNotReady
	}

	if k < 1 {
		k = DefaultTopK
	}
	if k > MaxTopK {
		k = MaxTopK
	}

	queryVec := s.model.vocab.Transform(trimmed)

	type scored struct {
		idx   int
		score float64
	}
	candidates := make([]scored, 0, len(s.model.matrix))
	for i, row := range s.model.matrix {
		score := cosine(queryVec, row)
		if score > MinSimilarity {
			candidates = append(candidates, scored{idx: i, score: score})
		}
	}

	// Stable sort keeps catalog order within equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	recs := make([]domain.Recommendation, len(candidates))
	for i, c := range candidates {
		book := s.model.books[c.idx]
		recs[i] = domain.Recommendation{
			Book:  book,
			Score: c.score,
			Cover: coverFor(book.Title),
		}
	}
	return recs, nil
}

// Filter applies post-retrieval preferences to a ranked result set.
// minRating drops books rated below it; genres keeps books whose
// genre contains any requested genre, case-insensitively. Order is
// preserved.
func Filter(recs []domain.Recommendation, prefs domain.Preferences) []domain.Recommendation {
	out := recs
	if prefs.MinRating != nil {
		kept := make([]domain.Recommendation, 0, len(out))
		for _, r := range out {
			if r.Rating >= *prefs.MinRating {
				kept = append(kept, r)
			}
		}
		out = kept
	}
	if len(prefs.Genres) > 0 {
		kept := make([]domain.Recommendation, 0, len(out))
		for _, r := range out {
			if genreMatches(r.Genre, prefs.Genres) {
				kept = append(kept, r)
			}
		}
		out = kept
	}
	return out
}

func genreMatches(genre string, wanted []string) bool {
	g := strings.ToLower(genre)
	for _, w := range wanted {
		if strings.Contains(g, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// cosine is the normalized dot product of two equal-length vectors.
// Zero vectors score zero.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
