// Package release implements the version bump and publish workflow: read the
// package version from a manifest, bump one component, rewrite the manifest
// and hand off to build/upload actions.
package release

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// BumpKind selects which version component to increment.
type BumpKind int

const (
	BumpPatch BumpKind = iota
	BumpMinor
	BumpMajor
)

// ErrUnknownBumpKind is wrapped by ParseBumpKind for invalid kind arguments.
var ErrUnknownBumpKind = fmt.Errorf("bump kind must be one of: patch, minor, major")

func (k BumpKind) String() string {
	switch k {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	}
	return fmt.Sprintf("BumpKind(%d)", int(k))
}

// ParseBumpKind parses a command-line bump kind argument.
func ParseBumpKind(s string) (BumpKind, error) {
	switch s {
	case "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	}
	return 0, fmt.Errorf("%w (got %q)", ErrUnknownBumpKind, s)
}

// Version is a MAJOR.MINOR.PATCH semantic version.
type Version struct {
	semver.Version
}

// ParseVersion parses a plain X.Y.Z version string.
func ParseVersion(s string) (Version, error) {
	v, err := semver.Parse(s)
	if err != nil {
		return Version{}, err
	}
	return Version{v}, nil
}

// Bump returns the next version for the given kind. Lower-order components
// reset to zero.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return Version{semver.Version{Major: v.Major + 1}}
	case BumpMinor:
		return Version{semver.Version{Major: v.Major, Minor: v.Minor + 1}}
	default:
		return Version{semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}}
	}
}
