// Package batch holds result types for batch recommendation runs.
package batch

import "github.com/shelfwise/shelfwise/internal/domain"

// EntryStatus is the processing outcome of a single batch entry.
type EntryStatus string

// Batch entry status values.
const (
	StatusOK    EntryStatus = "ok"
	StatusError EntryStatus = "error"
)

// Result is the outcome of processing one query in a batch request.
// A failed entry carries its error; siblings are unaffected.
type Result struct {
	query  string
	status EntryStatus
	recs   []domain.Recommendation
	err    error
}

// NewOK creates a successful batch result.
func NewOK(query string, recs []domain.Recommendation) Result {
	return Result{query: query, status: StatusOK, recs: recs}
}

// NewError creates a failed batch result.
func NewError(query string, err error) Result {
	return Result{query: query, status: StatusError, err: err}
}

// Query returns the original query string as submitted.
func (r Result) Query() string { return r.query }

// Status returns the processing outcome.
func (r Result) Status() EntryStatus { return r.status }

// Recommendations returns the ranked hits for a successful entry.
func (r Result) Recommendations() []domain.Recommendation { return r.recs }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }
