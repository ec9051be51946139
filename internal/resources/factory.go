package resources

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/hearth-sh/hearth/internal/config"
	"github.com/hearth-sh/hearth/internal/core"
)

// FactoryFunc builds a Resource from its raw configuration.
type FactoryFunc func(cfg config.ResourceConfig, ctx *core.SystemContext) (core.Resource, error)

// registry maps resource type names to factory functions.
var registry = make(map[string]FactoryFunc)

// Register adds a resource type to the registry. New variants only need a
// Register call here; the orchestrator stays unchanged.
func Register(typeStr string, fn FactoryFunc) {
	registry[typeStr] = fn
}

// New builds the Resource for the given configuration. Template expressions
// in string params are rendered against the system context first.
func New(cfg config.ResourceConfig, ctx *core.SystemContext) (core.Resource, error) {
	factoryFn, exists := registry[cfg.Type]
	if !exists {
		return nil, fmt.Errorf("unknown resource type: %s", cfg.Type)
	}
	if err := renderParams(cfg.Params, ctx); err != nil {
		return nil, fmt.Errorf("resource %q: %w", cfg.Name, err)
	}
	return factoryFn(cfg, ctx)
}

func init() {
	Register("symlink", newSymlinkResource)
	Register("package", newPackageResource)
}

// decodeConfig converts the parameter map into a resource struct.
func decodeConfig(input interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		WeaklyTypedInput: true, // "true"/"yes" -> bool and the like
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// renderParams walks the parameter map and renders string values as
// templates against the system context.
func renderParams(params map[string]interface{}, ctx *core.SystemContext) error {
	for k, v := range params {
		switch val := v.(type) {
		case string:
			rendered, err := core.ExecuteTemplate(val, ctx)
			if err != nil {
				return fmt.Errorf("param %q: %w", k, err)
			}
			params[k] = rendered
		case map[string]interface{}:
			if err := renderParams(val, ctx); err != nil {
				return err
			}
		case []interface{}:
			for i, item := range val {
				if str, ok := item.(string); ok {
					rendered, err := core.ExecuteTemplate(str, ctx)
					if err != nil {
						return fmt.Errorf("param %q index %d: %w", k, i, err)
					}
					val[i] = rendered
				}
			}
		}
	}
	return nil
}

// --- Factory functions (defaults are assigned here) ---

func newSymlinkResource(cfg config.ResourceConfig, _ *core.SystemContext) (core.Resource, error) {
	res := &SymlinkResource{
		Force: false,
	}
	if err := decodeConfig(cfg.Params, res); err != nil {
		return nil, err
	}
	return res, nil
}

func newPackageResource(cfg config.ResourceConfig, ctx *core.SystemContext) (core.Resource, error) {
	res := &PackageResource{
		Name:  cfg.Name, // params may override
		State: StatePresent,
	}
	if err := decodeConfig(cfg.Params, res); err != nil {
		return nil, err
	}
	if res.Manager == "" {
		res.Manager = ctx.DefaultManager
	}
	return res, nil
}
