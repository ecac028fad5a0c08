package artifacts

import "github.com/shelfwise/shelfwise/internal/domain"

// SchemaVersion is the on-disk artifact schema version. Bumped on
// any incompatible change so stale artifacts fail loudly at load.
const SchemaVersion = 1

// catalogFile is the persisted catalog snapshot.
type catalogFile struct {
	SchemaVersion int           `json:"schema_version"`
	Books         []domain.Book `json:"books"`
}

// vocabularyFile is the persisted fitted vocabulary: terms in column
// order with their inverse document frequencies.
type vocabularyFile struct {
	SchemaVersion int       `json:"schema_version"`
	Terms         []string  `json:"terms"`
	IDF           []float64 `json:"idf"`
}

// matrixFile is the persisted catalog vector matrix, one dense row
// per book in catalog order.
type matrixFile struct {
	SchemaVersion int         `json:"schema_version"`
	Dim           int         `json:"dim"`
	Rows          [][]float64 `json:"rows"`
}
