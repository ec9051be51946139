package home

import (
	"fmt"

	"github.com/hearth-sh/hearth/internal/core"
)

// Options tune how a Home run treats failures.
type Options struct {
	// Strict escalates every failed resource to a run abort, not just the
	// fatal error kinds.
	Strict bool
}

// Home owns an ordered collection of resources and applies them
// sequentially. Resources are applied exactly once, in insertion order; a
// Home instance is not safely re-entrant across Generate calls unless every
// resource is itself idempotent.
type Home struct {
	ctx  *core.SystemContext
	ui   core.UI
	opts Options

	resources []core.Resource
}

// New creates an empty Home bound to a system context and a UI.
func New(ctx *core.SystemContext, ui core.UI, opts Options) *Home {
	if ui == nil {
		ui = &core.NoOpUI{}
	}
	return &Home{
		ctx:  ctx,
		ui:   ui,
		opts: opts,
	}
}

// Append adds a resource to the end of the sequence. Constant time, no
// validation; validation happens during Generate.
func (h *Home) Append(r core.Resource) {
	h.resources = append(h.resources, r)
}

// Len returns the number of appended resources.
func (h *Home) Len() int {
	return len(h.resources)
}

// Generate applies every resource in insertion order, one at a time, and
// returns the aggregated report. Recoverable failures are recorded and the
// run continues; a fatal failure (missing symlink source, unknown package
// manager) aborts the run, as does any failure under Options.Strict.
func (h *Home) Generate() *Report {
	report := newReport()
	logger := h.ctx.Logger.With("run_id", report.RunID)
	logger.Debug("Generating home resources", "count", len(h.resources))

	h.ui.StartProgress("Generating home resources...", len(h.resources))
	defer h.ui.StopProgress()

	for _, res := range h.resources {
		if err := h.ctx.Err(); err != nil {
			report.abort(err)
			break
		}

		h.ui.Info(res.Describe())

		result := h.apply(res)
		report.record(res.Describe(), result)

		switch result.Status {
		case core.StatusSucceeded:
			if result.Changed {
				h.ui.Success(result.Message)
			} else {
				h.ui.Debug(result.Message)
			}
		case core.StatusSkipped:
			h.ui.Warning(result.Message)
			logger.Warn("Resource skipped", "resource", res.Describe(), "reason", result.Message)
		case core.StatusFailed:
			// Every failure surfaces the description plus the detail.
			h.ui.Error(fmt.Sprintf("%s: %s", res.Describe(), result.Message))
			logger.Error("Resource failed", "resource", res.Describe(), "error", result.Err)
			if core.IsFatal(result.Err) || h.opts.Strict {
				report.abort(result.Err)
			}
		}

		h.ui.IncrementProgress()

		if report.Status == StatusAborted {
			break
		}
	}

	report.finish()
	h.summarize(report)
	return report
}

// apply validates then applies a single resource, folding a validation
// error into a failed result.
func (h *Home) apply(res core.Resource) core.Result {
	if err := res.Validate(); err != nil {
		return core.Failure(err, fmt.Sprintf("invalid resource: %v", err))
	}
	return res.Apply(h.ctx)
}

func (h *Home) summarize(report *Report) {
	switch report.Status {
	case StatusCompleted:
		h.ui.Success(report.Summary())
	case StatusCompletedWithErrors:
		h.ui.Warning(report.Summary())
	case StatusAborted:
		h.ui.Error(report.Summary())
	}
}
