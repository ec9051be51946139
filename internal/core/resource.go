package core

// Resource is the interface representing a unit of desired machine state.
// It lives in the core package so concrete resources and the orchestrator
// can both depend on it without an import cycle.
type Resource interface {
	// Describe returns a stable, human-readable summary of the resource,
	// used for progress reporting. No side effects.
	Describe() string

	// Validate checks the resource configuration without touching the system.
	Validate() error

	// Apply reconciles live system state with the declared state.
	// Failures are classified into the Result rather than raised; the
	// orchestrator decides whether a failure aborts the run.
	Apply(ctx *SystemContext) Result
}
