package resources

import (
	"os/exec"

	"github.com/hearth-sh/hearth/internal/core"
)

type NixManager struct{}

func (m *NixManager) IsInstalled(name string) (bool, error) {
	// nix-env -q exits non-zero when the package is not in the profile
	cmd := exec.Command("nix-env", "-q", name)
	if err := core.CommandRunner.Run(cmd); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *NixManager) Install(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("nix-env", "-iA", name))
	return string(out), err
}

func (m *NixManager) Remove(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("nix-env", "-e", name))
	return string(out), err
}
