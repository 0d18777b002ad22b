package pkgmanager

import (
	"fmt"
	"strings"
)

// Manager identifies a supported package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// Candidates lists the supported managers in preference order.
var Candidates = []Manager{NPM, Yarn, PNPM}

// lockfileOrder is the order lockfiles are checked in when a project has
// more than one.
var lockfileOrder = []Manager{Yarn, PNPM, NPM}

func (m Manager) String() string {
	return string(m)
}

// Lockfile returns the lockfile name the manager writes.
func (m Manager) Lockfile() string {
	switch m {
	case Yarn:
		return "yarn.lock"
	case PNPM:
		return "pnpm-lock.yaml"
	default:
		return "package-lock.json"
	}
}

// InstallArgs returns the arguments that add deps to a project.
func (m Manager) InstallArgs(deps []string) []string {
	verb := "add"
	if m == NPM {
		verb = "install"
	}
	return append([]string{verb}, deps...)
}

// CommandLine returns the full install command for display.
func (m Manager) CommandLine(deps []string) string {
	return string(m) + " " + strings.Join(m.InstallArgs(deps), " ")
}

// ParseManager converts a name to a Manager.
func ParseManager(name string) (Manager, error) {
	switch m := Manager(strings.ToLower(strings.TrimSpace(name))); m {
	case NPM, Yarn, PNPM:
		return m, nil
	default:
		return "", fmt.Errorf("unknown package manager %q: supported managers are npm, yarn and pnpm", name)
	}
}
