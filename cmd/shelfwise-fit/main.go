// Command shelfwise-fit fits the recommendation model offline and
// writes the artifact triple the API server loads at startup.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/catalog"
	"github.com/shelfwise/shelfwise/internal/domain"
	logpkg "github.com/shelfwise/shelfwise/internal/logger"
	"github.com/shelfwise/shelfwise/internal/repository/artifacts"
	recommenduc "github.com/shelfwise/shelfwise/internal/usecase/recommend"
)

func main() {
	catalogPath := flag.String("catalog", "", "catalog JSON file (empty: embedded sample catalog)")
	outDir := flag.String("out", "models", "output directory for model artifacts")
	smokeQuery := flag.String("smoke-query", "fantasy adventure magic", "query to run against the fitted model (empty: skip)")
	flag.Parse()

	logger, err := logpkg.New("local")
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*catalogPath, *outDir, *smokeQuery, logger); err != nil {
		logger.Error("Model fit failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(catalogPath, outDir, smokeQuery string, logger *zap.Logger) error {
	var books []domain.Book
	if catalogPath != "" {
		loaded, err := catalog.Load(catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		books = loaded
		logger.Info("Catalog loaded", zap.String("path", catalogPath), zap.Int("books", len(books)))
	} else {
		books = catalog.Sample()
		logger.Info("Using embedded sample catalog", zap.Int("books", len(books)))
	}

	model, err := recommenduc.BuildModel(books)
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}
	logger.Info("Model fitted",
		zap.Int("books", len(books)),
		zap.Int("vocabulary_size", model.Vocabulary().Size()),
	)

	store := artifacts.New(outDir)
	if err := store.Save(books, model.Vocabulary(), model.Matrix()); err != nil {
		return fmt.Errorf("save artifacts: %w", err)
	}
	logger.Info("Artifacts saved", zap.String("dir", outDir))

	if smokeQuery == "" {
		return nil
	}

	// Smoke test: reload from disk and query, exercising the same
	// path the server takes at startup.
	books, vocab, matrix, err := store.Load()
	if err != nil {
		return fmt.Errorf("reload artifacts: %w", err)
	}
	reloaded, err := recommenduc.NewModel(vocab, matrix, books)
	if err != nil {
		return fmt.Errorf("assemble reloaded model: %w", err)
	}

	engine := recommenduc.New(reloaded)
	recs, err := engine.Recommend(context.Background(), smokeQuery, 3)
	if err != nil {
		return fmt.Errorf("smoke query: %w", err)
	}

	fmt.Printf("Top %d recommendations for %q:\n", len(recs), smokeQuery)
	for i, r := range recs {
		fmt.Printf("%d. %s by %s (score: %.3f)\n", i+1, r.Title, r.Author, r.Score)
	}
	return nil
}
