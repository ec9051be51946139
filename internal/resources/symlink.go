package resources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hearth-sh/hearth/internal/core"
)

// SymlinkResource creates a symbolic link from a source file or directory
// (relative to the resource root) to a target path (relative to the user's
// home directory). Immutable after construction.
type SymlinkResource struct {
	Source string `mapstructure:"source"`
	Target string `mapstructure:"target"`
	Force  bool   `mapstructure:"force"`
}

func (r *SymlinkResource) Describe() string {
	return fmt.Sprintf("Creating symlink: %s -> %s", r.Source, r.Target)
}

func (r *SymlinkResource) Validate() error {
	if r.Source == "" || r.Target == "" {
		return fmt.Errorf("symlink requires both 'source' and 'target'")
	}
	return nil
}

// Apply creates the symlink. Directories and files are linked identically:
// the whole entry is linked, never copied. An existing correct link is a
// no-op, so applying twice is safe.
func (r *SymlinkResource) Apply(ctx *core.SystemContext) core.Result {
	source := r.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(ctx.ResourceRoot, source)
	}

	// The source must exist before anything is created at the target.
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			srcErr := &core.SourceNotFoundError{Path: source}
			return core.Failure(srcErr, srcErr.Error())
		}
		return core.Failure(err, fmt.Sprintf("cannot stat source: %s", source))
	}

	target := r.Target
	if !filepath.IsAbs(target) {
		target = filepath.Join(ctx.HomeDir, target)
	}

	// Lstat, not Stat: a broken symlink at the target still counts as an
	// existing entry.
	info, err := os.Lstat(target)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			if dest, rlErr := os.Readlink(target); rlErr == nil && dest == source {
				return core.Unchanged(fmt.Sprintf("Symlink already in place: %s -> %s", source, target))
			}
		}
		if !r.Force {
			existsErr := &core.TargetExistsError{Path: target}
			return core.Skip(existsErr, fmt.Sprintf("Target already exists, skipping: %s", target))
		}
		if ctx.DryRun {
			return core.Applied(fmt.Sprintf("[dry-run] Would replace %s with symlink to %s", target, source))
		}
		// Force: remove whatever occupies the target (file, directory,
		// or symlink) before linking. RemoveAll on a symlink removes
		// the link itself, never what it points at.
		if rmErr := os.RemoveAll(target); rmErr != nil {
			return core.Failure(rmErr, fmt.Sprintf("cannot remove existing target: %s", target))
		}
	case os.IsNotExist(err):
		// Nothing at the target, proceed.
	default:
		return core.Failure(err, fmt.Sprintf("cannot stat target: %s", target))
	}

	if ctx.DryRun {
		return core.Applied(fmt.Sprintf("[dry-run] Would create symlink: %s -> %s", source, target))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return core.Failure(err, fmt.Sprintf("cannot create parent directory for: %s", target))
	}

	if err := os.Symlink(source, target); err != nil {
		return core.Failure(err, fmt.Sprintf("cannot create symlink: %s -> %s", source, target))
	}

	return core.Applied(fmt.Sprintf("Creating symlink: %s -> %s", source, target))
}
