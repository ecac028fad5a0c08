package shelfwise

import "github.com/shelfwise/shelfwise/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery        = domain.ErrInvalidQuery
	ErrEngineNotReady      = domain.ErrEngineNotReady
	ErrEmptyCatalog        = domain.ErrEmptyCatalog
	ErrArtifactsMissing    = domain.ErrArtifactsMissing
	ErrArtifactsIncomplete = domain.ErrArtifactsIncomplete
	ErrArtifactVersion     = domain.ErrArtifactVersion
	ErrArtifactCorrupt     = domain.ErrArtifactCorrupt
)
