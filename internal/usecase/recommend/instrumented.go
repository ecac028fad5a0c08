package recommend

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/metrics"
)

// Instrumented wraps a Recommender with engine metrics and logging.
// HTTP-level metrics are recorded by the transport middleware; this
// layer observes the scoring path itself.
type Instrumented struct {
	inner  Recommender
	logger *zap.Logger
}

// NewInstrumented wraps a recommender with observability.
func NewInstrumented(inner Recommender, logger *zap.Logger) *Instrumented {
	return &Instrumented{inner: inner, logger: logger}
}

var _ Recommender = (*Instrumented)(nil)

// Ready delegates to the inner engine.
func (p *Instrumented) Ready() bool { return p.inner.Ready() }

// Recommend delegates to the inner engine and records duration,
// result count, and outcome.
func (p *Instrumented) Recommend(ctx context.Context, query string, k int) ([]domain.Recommendation, error) {
	start := time.Now()

	recs, err := p.inner.Recommend(ctx, query, k)

	duration := time.Since(start)
	metrics.RecommendDuration.Observe(duration.Seconds())
	metrics.RecommendRequestsTotal.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		p.logger.Debug("Recommendation query failed",
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecommendResults.Observe(float64(len(recs)))
	p.logger.Debug("Recommendation query completed",
		zap.Duration("duration", duration),
		zap.Int("results", len(recs)),
	)
	return recs, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, domain.ErrEngineNotReady):
		return "not_ready"
	default:
		return "error"
	}
}
