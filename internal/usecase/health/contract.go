package health

// EngineChecker reports whether the recommendation engine has a
// fitted model loaded.
type EngineChecker interface {
	Ready() bool
}
