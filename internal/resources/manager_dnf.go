package resources

import (
	"os/exec"

	"github.com/hearth-sh/hearth/internal/core"
)

type DnfManager struct{}

func (m *DnfManager) IsInstalled(name string) (bool, error) {
	cmd := exec.Command("rpm", "-q", name)
	if err := core.CommandRunner.Run(cmd); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *DnfManager) Install(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("dnf", "install", "-y", name))
	return string(out), err
}

func (m *DnfManager) Remove(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("dnf", "remove", "-y", name))
	return string(out), err
}
