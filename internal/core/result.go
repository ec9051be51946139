package core

// Status classifies the outcome of applying a single resource.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is the value returned from applying a resource. It carries not just
// the error but whether anything changed and the message shown to the user.
type Result struct {
	// Status is the coarse outcome used for reporting and exit codes.
	Status Status

	// Changed reports whether the system was actually modified.
	Changed bool

	// Message is the human-readable line rendered by the UI.
	Message string

	// Err holds the technical error detail when the resource failed or
	// was skipped because of a conflict.
	Err error
}

// Applied returns a successful result that modified the system.
func Applied(msg string) Result {
	return Result{
		Status:  StatusSucceeded,
		Changed: true,
		Message: msg,
	}
}

// Unchanged returns a successful result that required no modification.
func Unchanged(msg string) Result {
	return Result{
		Status:  StatusSucceeded,
		Changed: false,
		Message: msg,
	}
}

// Skip returns a non-destructive skip, keeping the conflict as error detail.
func Skip(err error, msg string) Result {
	return Result{
		Status:  StatusSkipped,
		Changed: false,
		Message: msg,
		Err:     err,
	}
}

// Failure returns a failed result.
func Failure(err error, msg string) Result {
	return Result{
		Status:  StatusFailed,
		Changed: false,
		Message: msg,
		Err:     err,
	}
}
