// Package artifacts persists fitted model artifacts as three
// co-located versioned JSON files: the catalog snapshot, the
// vocabulary, and the catalog vector matrix. The three files are
// keyed together — a partial set is rejected at load.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/vectorizer"
)

// Artifact file names within the model directory.
const (
	catalogFileName    = "catalog.json"
	vocabularyFileName = "vocabulary.json"
	matrixFileName     = "matrix.json"
)

// Store reads and writes model artifacts under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes all three artifacts. The triple must come from the
// same fit: the matrix row order is the catalog order.
func (s *Store) Save(books []domain.Book, vocab *vectorizer.Vocabulary, matrix [][]float64) error {
	if len(matrix) != len(books) {
		return fmt.Errorf("matrix rows %d != catalog length %d: %w",
			len(matrix), len(books), domain.ErrArtifactCorrupt)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create model dir %s: %w", s.dir, err)
	}

	if err := s.writeFile(catalogFileName, catalogFile{
		SchemaVersion: SchemaVersion,
		Books:         books,
	}); err != nil {
		return err
	}
	if err := s.writeFile(vocabularyFileName, vocabularyFile{
		SchemaVersion: SchemaVersion,
		Terms:         vocab.Terms(),
		IDF:           vocab.IDF(),
	}); err != nil {
		return err
	}
	return s.writeFile(matrixFileName, matrixFile{
		SchemaVersion: SchemaVersion,
		Dim:           vocab.Size(),
		Rows:          matrix,
	})
}

// Load reads the artifact triple. When none of the files exist it
// returns ErrArtifactsMissing so the caller can fall back to an
// in-process fit; a partial set is ErrArtifactsIncomplete.
func (s *Store) Load() ([]domain.Book, *vectorizer.Vocabulary, [][]float64, error) {
	var present, absent []string
	for _, name := range []string{catalogFileName, vocabularyFileName, matrixFileName} {
		if fileExists(filepath.Join(s.dir, name)) {
			present = append(present, name)
		} else {
			absent = append(absent, name)
		}
	}
	if len(present) == 0 {
		return nil, nil, nil, fmt.Errorf("model dir %s: %w", s.dir, domain.ErrArtifactsMissing)
	}
	if len(absent) > 0 {
		return nil, nil, nil, fmt.Errorf("model dir %s missing %s: %w",
			s.dir, strings.Join(absent, ", "), domain.ErrArtifactsIncomplete)
	}

	var cat catalogFile
	if err := s.readFile(catalogFileName, &cat); err != nil {
		return nil, nil, nil, err
	}
	var voc vocabularyFile
	if err := s.readFile(vocabularyFileName, &voc); err != nil {
		return nil, nil, nil, err
	}
	var mat matrixFile
	if err := s.readFile(matrixFileName, &mat); err != nil {
		return nil, nil, nil, err
	}

	for name, v := range map[string]int{
		catalogFileName:    cat.SchemaVersion,
		vocabularyFileName: voc.SchemaVersion,
		matrixFileName:     mat.SchemaVersion,
	} {
		if v != SchemaVersion {
			return nil, nil, nil, fmt.Errorf("%s has schema version %d, want %d: %w",
				name, v, SchemaVersion, domain.ErrArtifactVersion)
		}
	}

	vocab, err := vectorizer.New(voc.Terms, voc.IDF)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", domain.ErrArtifactCorrupt, err)
	}

	if len(mat.Rows) != len(cat.Books) {
		return nil, nil, nil, fmt.Errorf("matrix rows %d != catalog length %d: %w",
			len(mat.Rows), len(cat.Books), domain.ErrArtifactCorrupt)
	}
	if mat.Dim != vocab.Size() {
		return nil, nil, nil, fmt.Errorf("matrix dim %d != vocabulary size %d: %w",
			mat.Dim, vocab.Size(), domain.ErrArtifactCorrupt)
	}
	for i, row := range mat.Rows {
		if len(row) != mat.Dim {
			return nil, nil, nil, fmt.Errorf("matrix row %d has %d columns, want %d: %w",
				i, len(row), mat.Dim, domain.ErrArtifactCorrupt)
		}
	}

	return cat.Books, vocab, mat.Rows, nil
}

func (s *Store) writeFile(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Store) readFile(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
