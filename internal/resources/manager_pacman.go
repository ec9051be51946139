package resources

import (
	"os/exec"

	"github.com/hearth-sh/hearth/internal/core"
)

type PacmanManager struct{}

func (m *PacmanManager) IsInstalled(name string) (bool, error) {
	cmd := exec.Command("pacman", "-Qi", name)
	if err := core.CommandRunner.Run(cmd); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *PacmanManager) Install(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("pacman", "-S", "--noconfirm", name))
	return string(out), err
}

func (m *PacmanManager) Remove(name string) (string, error) {
	out, err := core.CommandRunner.CombinedOutput(exec.Command("pacman", "-R", "--noconfirm", name))
	return string(out), err
}
