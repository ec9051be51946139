package core

import (
	"errors"
	"fmt"
	"strings"
)

// The error kinds below classify every failure a resource can report.
// Kinds whose Fatal method returns true abort the whole run; the rest are
// recorded and the run proceeds to the remaining resources.

// SourceNotFoundError reports a symlink source path missing on disk.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source path does not exist: %s", e.Path)
}

func (e *SourceNotFoundError) Fatal() bool { return true }

// TargetExistsError reports a symlink target occupied by a pre-existing
// entry while force is off. The existing entry is left untouched.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target already exists: %s", e.Path)
}

func (e *TargetExistsError) Fatal() bool { return false }

// UnsupportedManagerError reports an unrecognized package manager identifier.
type UnsupportedManagerError struct {
	Manager string
}

func (e *UnsupportedManagerError) Error() string {
	return fmt.Sprintf("unsupported package manager: %s", e.Manager)
}

func (e *UnsupportedManagerError) Fatal() bool { return true }

// InstallationFailedError reports a package manager invocation that returned
// a non-zero exit. Output holds the captured diagnostic output.
type InstallationFailedError struct {
	Package string
	Manager string
	Output  string
	Err     error
}

func (e *InstallationFailedError) Error() string {
	msg := fmt.Sprintf("installing %s via %s failed", e.Package, e.Manager)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *InstallationFailedError) Unwrap() error { return e.Err }

func (e *InstallationFailedError) Fatal() bool { return false }

// fatalError is implemented by error kinds that abort a run.
type fatalError interface {
	Fatal() bool
}

// IsFatal reports whether err (or anything it wraps) is a fatal kind.
func IsFatal(err error) bool {
	var f fatalError
	if errors.As(err, &f) {
		return f.Fatal()
	}
	return false
}
