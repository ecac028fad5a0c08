package recommend

import (
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/vectorizer"
)

// Model is the fitted artifact triple: vocabulary, catalog vector
// matrix, and the catalog records the matrix rows join to by index.
// A Model is immutable once built; concurrent readers need no locks.
type Model struct {
	vocab  *vectorizer.Vocabulary
	matrix [][]float64
	books  []domain.Book
}

// BuildModel fits a vector space over the catalog: it derives the
// combined document of every book, fits the vocabulary over the full
// corpus, then transforms every document with that same vocabulary.
func BuildModel(books []domain.Book) (*Model, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("build model: %w", domain.ErrEmptyCatalog)
	}

	docs := make([]string, len(books))
	for i, b := range books {
		docs[i] = b.CombinedText()
	}

	vocab, err := vectorizer.Fit(docs)
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	return &Model{
		vocab:  vocab,
		matrix: vocab.TransformAll(docs),
		books:  books,
	}, nil
}

// NewModel assembles a Model from loaded artifacts, enforcing that
// the triple fits together: one matrix row per book, every row of
// vocabulary dimension.
func NewModel(vocab *vectorizer.Vocabulary, matrix [][]float64, books []domain.Book) (*Model, error) {
	if len(books) == 0 {
		return nil, fmt.Errorf("new model: %w", domain.ErrEmptyCatalog)
	}
	if len(matrix) != len(books) {
		return nil, fmt.Errorf("matrix rows %d != catalog length %d: %w",
			len(matrix), len(books), domain.ErrArtifactCorrupt)
	}
	for i, row := range matrix {
		if len(row) != vocab.Size() {
			return nil, fmt.Errorf("matrix row %d has %d columns, want %d: %w",
				i, len(row), vocab.Size(), domain.ErrArtifactCorrupt)
		}
	}
	return &Model{vocab: vocab, matrix: matrix, books: books}, nil
}

// Vocabulary returns the fitted vocabulary.
func (m *Model) Vocabulary() *vectorizer.Vocabulary { return m.vocab }

// Matrix returns the catalog vector matrix in catalog order.
func (m *Model) Matrix() [][]float64 { return m.matrix }

// Books returns the catalog records in matrix row order.
func (m *Model) Books() []domain.Book { return m.books }
