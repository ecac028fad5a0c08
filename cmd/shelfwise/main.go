package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/catalog"
	"github.com/shelfwise/shelfwise/internal/config"
	"github.com/shelfwise/shelfwise/internal/domain"
	logpkg "github.com/shelfwise/shelfwise/internal/logger"
	"github.com/shelfwise/shelfwise/internal/metrics"
	"github.com/shelfwise/shelfwise/internal/repository/artifacts"
	chiTransport "github.com/shelfwise/shelfwise/internal/transport/chi"
	batchuc "github.com/shelfwise/shelfwise/internal/usecase/batch"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
	"github.com/shelfwise/shelfwise/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shelfwise API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("model_dir", cfg.Model.Dir),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	// Load or build the model — composition root
	model := loadModel(cfg, logger)

	var engine recommenduc.Recommender = recommenduc.New(model)
	engine = recommenduc.NewInstrumented(engine, logger)

	batchSvc := batchuc.New(engine)
	healthSvc := healthuc.New(engine)

	server := chiTransport.NewServer(engine, batchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadModel resolves the fitted model: saved artifacts first, then a
// fresh fit over the configured (or embedded sample) catalog. A nil
// return means the server starts degraded and answers health checks
// only.
func loadModel(cfg config.Config, logger *zap.Logger) *recommenduc.Model {
	store := artifacts.New(cfg.Model.Dir)

	books, vocab, matrix, err := store.Load()
	if err == nil {
		model, merr := recommenduc.NewModel(vocab, matrix, books)
		if merr != nil {
			logger.Error("Saved artifacts are inconsistent", zap.Error(merr))
		} else {
			logger.Info("Model loaded from artifacts",
				zap.String("dir", cfg.Model.Dir),
				zap.Int("books", len(books)),
				zap.Int("vocabulary_size", vocab.Size()),
			)
			return model
		}
	} else {
		logger.Warn("Model artifacts unavailable, fitting from catalog", zap.Error(err))
	}

	books = resolveCatalog(cfg, logger)
	model, err := recommenduc.BuildModel(books)
	if err != nil {
		logger.Error("Failed to fit model, starting degraded", zap.Error(err))
		return nil
	}
	logger.Info("Model fitted from catalog",
		zap.Int("books", len(books)),
		zap.Int("vocabulary_size", model.Vocabulary().Size()),
	)

	if err := store.Save(books, model.Vocabulary(), model.Matrix()); err != nil {
		logger.Warn("Failed to persist model artifacts", zap.Error(err))
	}
	return model
}

func resolveCatalog(cfg config.Config, logger *zap.Logger) []domain.Book {
	if cfg.Model.CatalogPath != "" {
		books, err := catalog.Load(cfg.Model.CatalogPath)
		if err == nil {
			return books
		}
		logger.Warn("Failed to load catalog file, using embedded sample",
			zap.String("path", cfg.Model.CatalogPath),
			zap.Error(err),
		)
	}
	return catalog.Sample()
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]any{
						"success": false,
						"error":   "Internal server error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
