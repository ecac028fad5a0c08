// Package health reports service health. A service with no fitted
// model still answers health checks: failure to load the model must
// stay observable independently of failure to serve.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "healthy"
	// Degraded indicates the engine is running without a fitted model.
	Degraded Status = "degraded"
)

// Report aggregates health check results.
type Report struct {
	Status      Status
	ModelLoaded bool
}

// Service coordinates health checks.
type Service struct {
	engine EngineChecker
}

// New creates a Service. engine can be nil.
func New(engine EngineChecker) *Service {
	return &Service{engine: engine}
}

// Check reports the current health. The context is accepted for
// interface symmetry; checks are in-memory and never block.
func (s *Service) Check(_ context.Context) Report {
	loaded := s.engine != nil && s.engine.Ready()

	status := Healthy
	if !loaded {
		status = Degraded
	}
	return Report{Status: status, ModelLoaded: loaded}
}
