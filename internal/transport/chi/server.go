// Package chi exposes the recommendation engine over HTTP with the
// fixed JSON contract of the public API.
package chi

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	chirouter "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
	logpkg "github.com/shelfwise/shelfwise/internal/logger"
	dombatch "github.com/shelfwise/shelfwise/internal/domain/batch"
	batchuc "github.com/shelfwise/shelfwise/internal/usecase/batch"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

// Server handles the HTTP API.
type Server struct {
	recommender recommenduc.Recommender
	batch       *batchuc.Service
	health      *healthuc.Service
	logger      *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	recommender recommenduc.Recommender,
	batch *batchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		recommender: recommender,
		batch:       batch,
		health:      health,
		logger:      logger,
	}
}

// Routes registers all API routes plus JSON 404/405 handlers.
func (s *Server) Routes(r chirouter.Router) {
	r.Get("/health", s.HealthCheck)
	r.Post("/recommendations", s.Recommendations)
	r.Post("/batch_recommendations", s.BatchRecommendations)
	r.Get("/metrics", s.Metrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Endpoint not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
	})
}

// HealthCheck handles GET /health. Always 200: a missing model is
// reported through status/model_loaded, not an error code.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	writeJSON(w, http.StatusOK, healthResponse{
		Status:      string(report.Status),
		ModelLoaded: report.ModelLoaded,
		Timestamp:   timestamp(),
	})
}

// Recommendations handles POST /recommendations.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Request must be JSON"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Query parameter is required"})
		return
	}
	if utf8.RuneCountInString(query) < recommenduc.MinQueryLen {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Query must be at least 2 characters long"})
		return
	}

	k, prefs := preferencesFromRequest(req.Preferences)

	recs, err := s.recommender.Recommend(r.Context(), query, k)
	if err != nil {
		s.handleEngineError(w, r, err)
		return
	}

	recs = recommenduc.Filter(recs, prefs)
	if recs == nil {
		recs = []domain.Recommendation{}
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		Success:         true,
		Query:           query,
		Recommendations: recs,
		TotalResults:    len(recs),
		Timestamp:       timestamp(),
	})
}

// BatchRecommendations handles POST /batch_recommendations.
func (s *Server) BatchRecommendations(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Request must be JSON"})
		return
	}

	// A missing, null, or non-list queries value is the same contract
	// violation as an empty list.
	var rawQueries []json.RawMessage
	if len(req.Queries) > 0 {
		if err := json.Unmarshal(req.Queries, &rawQueries); err != nil {
			rawQueries = nil
		}
	}
	if len(rawQueries) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Queries parameter must be a non-empty list"})
		return
	}
	if len(rawQueries) > s.batch.MaxQueries() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Maximum 10 queries per batch"})
		return
	}

	// Non-string elements fail in place with the echoed value; only
	// string queries reach the engine, at their original positions.
	entries := make([]batchEntry, len(rawQueries))
	queries := make([]string, 0, len(rawQueries))
	positions := make([]int, 0, len(rawQueries))
	for i, raw := range rawQueries {
		var q string
		if err := json.Unmarshal(raw, &q); err != nil {
			var echoed any
			_ = json.Unmarshal(raw, &echoed)
			entries[i] = batchEntry{Query: echoed, Error: "Invalid query"}
			continue
		}
		queries = append(queries, q)
		positions = append(positions, i)
	}

	results := s.batch.Recommend(r.Context(), queries)
	for j, res := range results {
		entry, err := batchEntryFromResult(res)
		if err != nil {
			// Engine-level failures (not per-query validation) fail the
			// whole request, matching the single-query endpoint.
			s.handleEngineError(w, r, err)
			return
		}
		entries[positions[j]] = entry
	}

	writeJSON(w, http.StatusOK, batchResponse{
		Success:   true,
		Results:   entries,
		Timestamp: timestamp(),
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// handleEngineError maps engine failures to the public error shapes.
func (s *Server) handleEngineError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidQuery) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Query must be at least 2 characters long"})
		return
	}

	s.requestLogger(r).Error("recommendation request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, serverErrorResponse{
		Success: false,
		Error:   "Internal server error",
		Message: safeMessage(err),
	})
}

// safeMessage exposes sentinel error text to clients; anything else
// stays server-side.
func safeMessage(err error) string {
	sentinels := []error{
		domain.ErrEngineNotReady,
		domain.ErrEmptyCatalog,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "unexpected error"
}

// requestLogger returns the request-scoped logger placed in the
// context by the wide-event middleware. A request id proves the
// middleware chain ran; without it, fall back to the server logger.
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if chiMiddleware.GetReqID(r.Context()) != "" {
		return logpkg.FromContext(r.Context())
	}
	return s.logger
}

func batchEntryFromResult(res dombatch.Result) (batchEntry, error) {
	if res.Status() == dombatch.StatusOK {
		recs := res.Recommendations()
		if recs == nil {
			recs = []domain.Recommendation{}
		}
		return batchEntry{Query: res.Query(), Recommendations: &recs}, nil
	}
	if errors.Is(res.Err(), domain.ErrInvalidQuery) {
		return batchEntry{Query: res.Query(), Error: "Invalid query"}, nil
	}
	return batchEntry{}, res.Err()
}

// preferencesFromRequest extracts the clamped result count and the
// post-retrieval filters. maxResults defaults to 10 and is clamped
// to [1, 20].
func preferencesFromRequest(p *preferencesRequest) (int, domain.Preferences) {
	k := recommenduc.DefaultTopK
	prefs := domain.Preferences{}
	if p == nil {
		return k, prefs
	}

	if p.MaxResults != nil {
		k = *p.MaxResults
		if k < 1 {
			k = 1
		}
		if k > recommenduc.MaxTopK {
			k = recommenduc.MaxTopK
		}
	}
	prefs.MinRating = p.MinRating
	prefs.Genres = p.Genres
	return k, prefs
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
