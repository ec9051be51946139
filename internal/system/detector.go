package system

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/hearth-sh/hearth/internal/core"
)

// Detect analyzes the current machine and fills a SystemContext: operating
// system, distribution, and the default package manager for the platform.
func Detect(parent context.Context, dryRun bool) *core.SystemContext {
	ctx := core.NewSystemContext(parent, dryRun)

	ctx.OS = runtime.GOOS
	if host, err := os.Hostname(); err == nil {
		ctx.Hostname = host
	}

	if ctx.OS == "linux" {
		info := readOSRelease()
		ctx.Distro = info["ID"]
		ctx.Version = info["VERSION_ID"]
		// ID_LIKE carries the parent family for derivatives, e.g. a
		// CachyOS box reports ID=cachyos ID_LIKE="arch". The manager
		// decision below falls back to it when ID is unknown.
		ctx.DefaultManager = defaultManager(ctx.OS, ctx.Distro, info["ID_LIKE"])
	} else {
		ctx.DefaultManager = defaultManager(ctx.OS, "", "")
	}

	return ctx
}

// defaultManager maps a platform to its conventional package manager.
func defaultManager(goos, distro, distroLike string) string {
	if goos == "darwin" {
		return "brew"
	}

	for _, id := range append([]string{distro}, strings.Fields(distroLike)...) {
		switch id {
		case "debian", "ubuntu", "linuxmint", "pop":
			return "apt"
		case "fedora", "rhel", "centos", "rocky", "almalinux":
			return "dnf"
		case "arch", "manjaro", "endeavouros", "cachyos":
			return "pacman"
		case "nixos":
			return "nix"
		}
	}

	// Unknown distribution: probe PATH for a known manager.
	for cmd, mgr := range map[string]string{
		"apt-get": "apt",
		"dnf":     "dnf",
		"pacman":  "pacman",
		"nix-env": "nix",
		"brew":    "brew",
	} {
		if core.IsCommandAvailable(cmd) {
			return mgr
		}
	}
	return ""
}

func readOSRelease() map[string]string {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return map[string]string{}
	}
	defer f.Close()
	return parseOSRelease(f)
}

func parseOSRelease(r io.Reader) map[string]string {
	info := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
			info[parts[0]] = strings.Trim(parts[1], "\"")
		}
	}
	return info
}
