package resources

import (
	"fmt"

	"github.com/hearth-sh/hearth/internal/core"
)

// Desired states for a package resource.
const (
	StatePresent = "present"
	StateAbsent  = "absent"
)

// PackageResource ensures a named package is installed (or removed) through
// a platform package manager.
type PackageResource struct {
	Name    string `mapstructure:"name"`
	Manager string `mapstructure:"manager"` // apt, brew, nix, dnf, pacman
	State   string `mapstructure:"state"`   // present (default) or absent
}

func (r *PackageResource) Describe() string {
	if r.State == StateAbsent {
		return fmt.Sprintf("Removing package: %s (%s)", r.Name, r.Manager)
	}
	return fmt.Sprintf("Installing package: %s (%s)", r.Name, r.Manager)
}

func (r *PackageResource) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("package requires 'name'")
	}
	switch r.State {
	case "", StatePresent, StateAbsent:
		return nil
	default:
		return fmt.Errorf("unsupported package state: %s", r.State)
	}
}

// Apply queries the manager before acting, so a package that is already in
// the desired state is a no-op and the installer is never invoked for it.
func (r *PackageResource) Apply(ctx *core.SystemContext) core.Result {
	mgr, err := GetPackageManager(r.Manager)
	if err != nil {
		return core.Failure(err, err.Error())
	}

	installed, err := mgr.IsInstalled(r.Name)
	if err != nil {
		return core.Failure(err, fmt.Sprintf("cannot query package state: %s", r.Name))
	}

	if r.State == StateAbsent {
		return r.remove(ctx, mgr, installed)
	}
	return r.install(ctx, mgr, installed)
}

func (r *PackageResource) install(ctx *core.SystemContext, mgr PackageManager, installed bool) core.Result {
	if installed {
		return core.Unchanged(fmt.Sprintf("Package already installed: %s", r.Name))
	}
	if ctx.DryRun {
		return core.Applied(fmt.Sprintf("[dry-run] Would install %s via %s", r.Name, r.Manager))
	}

	out, err := mgr.Install(r.Name)
	if err != nil {
		instErr := &core.InstallationFailedError{
			Package: r.Name,
			Manager: r.Manager,
			Output:  out,
			Err:     err,
		}
		return core.Failure(instErr, instErr.Error())
	}
	return core.Applied(fmt.Sprintf("Installed package: %s (%s)", r.Name, r.Manager))
}

func (r *PackageResource) remove(ctx *core.SystemContext, mgr PackageManager, installed bool) core.Result {
	if !installed {
		return core.Unchanged(fmt.Sprintf("Package already absent: %s", r.Name))
	}
	if ctx.DryRun {
		return core.Applied(fmt.Sprintf("[dry-run] Would remove %s via %s", r.Name, r.Manager))
	}

	out, err := mgr.Remove(r.Name)
	if err != nil {
		return core.Failure(
			fmt.Errorf("removing %s via %s failed: %w", r.Name, r.Manager, err),
			fmt.Sprintf("Removing %s failed: %s", r.Name, out),
		)
	}
	return core.Applied(fmt.Sprintf("Removed package: %s (%s)", r.Name, r.Manager))
}
