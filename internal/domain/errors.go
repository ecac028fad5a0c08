package domain

import "errors"

var (
	// ErrInvalidQuery signals a malformed query (empty or shorter than two characters after trimming).
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEngineNotReady signals that no fitted model has been loaded.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrEmptyCatalog signals an attempt to fit a model over an empty catalog.
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrArtifactsMissing signals that none of the model artifacts exist on disk.
	ErrArtifactsMissing = errors.New("model artifacts missing")
	// ErrArtifactsIncomplete signals that only a subset of the model artifacts exists.
	ErrArtifactsIncomplete = errors.New("model artifacts incomplete")
	// ErrArtifactVersion signals an incompatible artifact schema version.
	ErrArtifactVersion = errors.New("unsupported artifact schema version")
	// ErrArtifactCorrupt signals artifacts that do not fit together (e.g. matrix/catalog length mismatch).
	ErrArtifactCorrupt = errors.New("model artifacts corrupt")
)
