package core

import (
	"os/exec"
)

// Runner abstracts command execution so package manager adapters can be
// exercised in tests without touching the host.
type Runner interface {
	Run(cmd *exec.Cmd) error
	CombinedOutput(cmd *exec.Cmd) ([]byte, error)
	Output(cmd *exec.Cmd) ([]byte, error)
}

// RealRunner implements Runner using real os/exec.
type RealRunner struct{}

func (r *RealRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (r *RealRunner) CombinedOutput(cmd *exec.Cmd) ([]byte, error) {
	return cmd.CombinedOutput()
}

func (r *RealRunner) Output(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

// CommandRunner is the global runner instance. Tests replace it with a mock.
var CommandRunner Runner = &RealRunner{}

// RunCommand runs a command through the global runner and returns its
// combined output.
func RunCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	out, err := CommandRunner.CombinedOutput(cmd)
	return string(out), err
}

// IsCommandAvailable reports whether a command is present on PATH.
var IsCommandAvailable = func(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
