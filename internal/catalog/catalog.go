// Package catalog provides book catalog loading and the embedded
// sample dataset used when no catalog has been provisioned.
package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Load reads a catalog from a JSON file: an array of book objects.
func Load(path string) ([]domain.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var books []domain.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("catalog %s: %w", path, domain.ErrEmptyCatalog)
	}
	return books, nil
}
