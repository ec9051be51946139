package home

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearth-sh/hearth/internal/core"
)

// RunStatus is the aggregate outcome of a Generate call.
type RunStatus string

const (
	StatusCompleted           RunStatus = "completed"
	StatusCompletedWithErrors RunStatus = "completed_with_errors"
	StatusAborted             RunStatus = "aborted"
)

// Outcome pairs a resource description with the result of applying it.
type Outcome struct {
	Description string
	Result      core.Result
}

// Report aggregates the per-resource outcomes of a single Generate run.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration

	Outcomes []Outcome
	Status   RunStatus

	// AbortErr is the fatal error that ended the run, when Status is
	// StatusAborted.
	AbortErr error
}

func newReport() *Report {
	return &Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
}

func (r *Report) record(description string, result core.Result) {
	r.Outcomes = append(r.Outcomes, Outcome{Description: description, Result: result})
}

func (r *Report) abort(err error) {
	r.Status = StatusAborted
	r.AbortErr = err
}

// finish computes the aggregate status from the recorded outcomes.
// An already-aborted report keeps its status.
func (r *Report) finish() {
	r.Duration = time.Since(r.StartedAt)
	if r.Status == StatusAborted {
		return
	}
	if r.Failed() > 0 || r.Skipped() > 0 {
		r.Status = StatusCompletedWithErrors
		return
	}
	r.Status = StatusCompleted
}

// Succeeded counts resources applied successfully, including no-ops.
func (r *Report) Succeeded() int { return r.count(core.StatusSucceeded) }

// Skipped counts resources skipped because of a non-destructive conflict.
func (r *Report) Skipped() int { return r.count(core.StatusSkipped) }

// Failed counts resources whose apply failed.
func (r *Report) Failed() int { return r.count(core.StatusFailed) }

func (r *Report) count(status core.Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Result.Status == status {
			n++
		}
	}
	return n
}

// ExitCode maps the run status to a process exit code for the CLI:
// zero only for a fully successful run.
func (r *Report) ExitCode() int {
	if r.Status == StatusCompleted {
		return 0
	}
	return 1
}

// Summary returns the final status line shown to the user.
func (r *Report) Summary() string {
	switch r.Status {
	case StatusCompleted:
		return "Home generated!"
	case StatusCompletedWithErrors:
		return fmt.Sprintf("Home generated with errors: %d succeeded, %d skipped, %d failed",
			r.Succeeded(), r.Skipped(), r.Failed())
	case StatusAborted:
		if r.AbortErr != nil {
			return fmt.Sprintf("Generation aborted: %v", r.AbortErr)
		}
		return "Generation aborted"
	default:
		return string(r.Status)
	}
}
