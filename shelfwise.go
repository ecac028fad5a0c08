// Package shelfwise embeds the book recommendation engine in-process:
// the same fitted TF-IDF model the API server runs, without the HTTP
// layer. Use pkg/sdk to talk to a running server instead.
package shelfwise

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/catalog"
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/repository/artifacts"
	batchuc "github.com/shelfwise/shelfwise/internal/usecase/batch"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

// Client is the shelfwise embedded entry point. It is safe for
// concurrent use: the fitted model is immutable.
type Client struct {
	engine    recommenduc.Recommender
	batchSvc  *batchuc.Service
	healthSvc *healthuc.Service
}

// New creates a Client with a fitted model. Resolution order: saved
// artifacts (WithModelDir), then a fresh fit over the configured
// catalog, defaulting to the embedded sample catalog.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o(cfg)
	}

	model, err := resolveModel(cfg)
	if err != nil {
		return nil, err
	}

	var engine recommenduc.Recommender = recommenduc.New(model)

	return &Client{
		engine:    engine,
		batchSvc:  batchuc.New(engine),
		healthSvc: healthuc.New(engine),
	}, nil
}

func resolveModel(cfg *clientConfig) (*recommenduc.Model, error) {
	if cfg.modelDir != "" {
		books, vocab, matrix, err := artifacts.New(cfg.modelDir).Load()
		if err != nil {
			return nil, fmt.Errorf("shelfwise: load artifacts: %w", err)
		}
		model, err := recommenduc.NewModel(vocab, matrix, books)
		if err != nil {
			return nil, fmt.Errorf("shelfwise: assemble model: %w", err)
		}
		return model, nil
	}

	books := cfg.books
	if cfg.catalogPath != "" {
		loaded, err := catalog.Load(cfg.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("shelfwise: load catalog: %w", err)
		}
		books = loaded
	}
	if len(books) == 0 {
		books = catalog.Sample()
	}

	model, err := recommenduc.BuildModel(books)
	if err != nil {
		return nil, fmt.Errorf("shelfwise: fit model: %w", err)
	}
	cfg.logger.Debug("model fitted",
		zap.Int("books", len(books)),
		zap.Int("vocabulary_size", model.Vocabulary().Size()),
	)
	return model, nil
}

// Ready reports whether a fitted model is loaded.
func (c *Client) Ready() bool { return c.engine.Ready() }

// Health reports the engine health, mirroring the server's /health.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	return HealthStatus{
		Status:      string(report.Status),
		ModelLoaded: report.ModelLoaded,
	}
}

// Recommend returns catalog books ranked by similarity to query,
// with post-retrieval preference filters applied.
func (c *Client) Recommend(ctx context.Context, query string, opts *RecommendOptions) ([]Recommendation, error) {
	if opts == nil {
		opts = &RecommendOptions{}
	}

	recs, err := c.engine.Recommend(ctx, query, opts.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	recs = recommenduc.Filter(recs, domain.Preferences{
		MinRating: opts.MinRating,
		Genres:    opts.Genres,
	})
	return fromRecommendations(recs), nil
}

// BatchRecommend runs several queries with per-entry error isolation.
// The returned slice always has one entry per query, in order.
func (c *Client) BatchRecommend(ctx context.Context, queries []string) []BatchResult {
	results := c.batchSvc.Recommend(ctx, queries)

	out := make([]BatchResult, len(results))
	for i, res := range results {
		out[i] = BatchResult{
			Query:           res.Query(),
			Recommendations: fromRecommendations(res.Recommendations()),
			Err:             res.Err(),
		}
	}
	return out
}
