package shelfwise

import (
	"go.uber.org/zap"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	books       []domain.Book
	catalogPath string
	modelDir    string
	logger      *zap.Logger
}

// WithCatalog fits the model over the given books instead of the
// embedded sample catalog.
func WithCatalog(books []Book) Option {
	return func(c *clientConfig) {
		c.books = toBooks(books)
	}
}

// WithCatalogFile fits the model over a catalog JSON file.
func WithCatalogFile(path string) Option {
	return func(c *clientConfig) {
		c.catalogPath = path
	}
}

// WithModelDir loads previously fitted artifacts instead of fitting.
// Takes precedence over catalog options.
func WithModelDir(dir string) Option {
	return func(c *clientConfig) {
		c.modelDir = dir
	}
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
