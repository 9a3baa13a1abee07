package layout

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version string of builds without ldflags.
const DevVersion = "dev"

// CheckVersion enforces the layout's "requires" constraint against the
// running build. Layouts without a constraint and dev builds always pass.
func CheckVersion(l Layout, version string) error {
	if l.Requires == "" || version == DevVersion {
		return nil
	}

	c, err := semver.NewConstraint(l.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", l.Requires, err)
	}

	v, err := ParseVersion(version)
	if err != nil {
		return fmt.Errorf("parsing build version %q: %w", version, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("layout %s requires mktarget %s, this is %s", l.Source, l.Requires, v)
	}
	return nil
}

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
