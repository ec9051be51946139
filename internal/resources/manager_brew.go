package resources

import (
	"os/exec"

	"github.com/hearth-sh/hearth/internal/core"
)

type BrewManager struct{}

func (m *BrewManager) IsInstalled(name string) (bool, error) {
	cmd := exec.Command("brew", "list", name)
	if err := core.CommandRunner.Run(cmd); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *BrewManager) Install(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("brew", "install", name))
	return string(out), err
}

func (m *BrewManager) Remove(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("brew", "uninstall", name))
	return string(out), err
}
