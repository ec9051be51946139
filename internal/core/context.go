package core

import (
	"context"
	"io"
	"os"
)

// SystemContext holds the runtime context of a run. It wraps the standard
// "context" package and adds the hearth-specific fields every resource
// needs: where source files live, where the user's home is, and what kind
// of machine we are on.
type SystemContext struct {
	context.Context

	// Operating system information, filled by the system detector.
	OS       string // runtime.GOOS (linux, darwin)
	Distro   string // ubuntu, arch, fedora, ...
	Version  string // 24.04, 41, rolling
	Hostname string

	// User information.
	User    string
	HomeDir string // symlink targets resolve against this

	// ResourceRoot is the directory symlink sources resolve against,
	// shipped alongside the user's configuration.
	ResourceRoot string

	// DefaultManager is the package manager chosen for this platform,
	// used when a package resource does not name one.
	DefaultManager string

	// Vars are user-defined variables available to templates and
	// conditions, merged from the config file and its .env sidecar.
	Vars map[string]string

	// DryRun simulates every change without touching the system.
	DryRun bool

	Logger Logger

	Stdout io.Writer
	Stderr io.Writer
}

// NewSystemContext builds a context with environment defaults. The system
// detector fills in the platform fields afterwards.
func NewSystemContext(parent context.Context, dryRun bool) *SystemContext {
	if parent == nil {
		parent = context.Background()
	}
	home, _ := os.UserHomeDir()
	return &SystemContext{
		Context: parent,
		OS:      "unknown",
		User:    os.Getenv("USER"),
		HomeDir: home,
		Vars:    map[string]string{},
		DryRun:  dryRun,
		Logger:  NewDefaultLogger(os.Stderr, LevelInfo),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}
