package home

import (
	"fmt"

	"github.com/hearth-sh/hearth/internal/config"
	"github.com/hearth-sh/hearth/internal/core"
	"github.com/hearth-sh/hearth/internal/resources"
)

// Build constructs a Home from a loaded configuration. Resources guarded by
// a `when:` condition that does not hold are left out of the sequence;
// everything else is appended in file order, which is the application order.
func Build(cfg *config.Config, ctx *core.SystemContext, ui core.UI, opts Options) (*Home, error) {
	h := New(ctx, ui, opts)

	for _, rc := range cfg.Resources {
		if rc.When != "" {
			ok, err := core.EvaluateCondition(rc.When, ctx)
			if err != nil {
				return nil, fmt.Errorf("resource %q: %w", rc.Name, err)
			}
			if !ok {
				ctx.Logger.Debug("Resource skipped, condition not met", "resource", rc.Name, "when", rc.When)
				continue
			}
		}

		res, err := resources.New(rc, ctx)
		if err != nil {
			return nil, err
		}
		h.Append(res)
	}

	return h, nil
}
