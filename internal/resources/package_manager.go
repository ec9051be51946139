package resources

import (
	"github.com/hearth-sh/hearth/internal/core"
)

// PackageManager is the common interface over platform package managers.
// Install and Remove return the captured command output for diagnostics.
type PackageManager interface {
	IsInstalled(name string) (bool, error)
	Install(name string) (string, error)
	Remove(name string) (string, error)
}

// GetPackageManager returns the adapter for the given manager identifier.
func GetPackageManager(managerName string) (PackageManager, error) {
	switch managerName {
	case "apt":
		return &AptManager{}, nil
	case "brew":
		return &BrewManager{}, nil
	case "nix":
		return &NixManager{}, nil
	case "dnf":
		return &DnfManager{}, nil
	case "pacman":
		return &PacmanManager{}, nil
	default:
		return nil, &core.UnsupportedManagerError{Manager: managerName}
	}
}
