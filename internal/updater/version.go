package updater

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrDevelopmentBuild is returned for binaries built without a release
// version.
var ErrDevelopmentBuild = errors.New("development build has no release version")

// IsUpdateAvailable reports whether latest is newer than current. Both may
// carry a leading "v".
func IsUpdateAvailable(current, latest string) (bool, error) {
	if current == "" || current == "dev" {
		return false, ErrDevelopmentBuild
	}
	cv, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return lv.GreaterThan(cv), nil
}
