package resources

import (
	"os"
	"os/exec"

	"github.com/hearth-sh/hearth/internal/core"
)

type AptManager struct{}

func (m *AptManager) IsInstalled(name string) (bool, error) {
	// dpkg -s exits non-zero when the package is not installed
	cmd := exec.Command("dpkg", "-s", name)
	if err := core.CommandRunner.Run(cmd); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *AptManager) Install(name string) (string, error) {
	cmd := exec.Command("apt-get", "install", "-y", name)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	out, err := core.CommandRunner.CombinedOutput(cmd)
	return string(out), err
}

func (m *AptManager) Remove(name string) (string, error) {
	cmd := exec.Command("apt-get", "remove", "-y", name)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	out, err := core.CommandRunner.CombinedOutput(cmd)
	return string(out), err
}
