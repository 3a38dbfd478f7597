// Package semver increments semantic versions by bump kind.
//
// Version strings are handled without a "v" prefix, matching how package
// ecosystems like PyPI store them.
package semver

import (
	"fmt"
	"strconv"
	"strings"

	modsemver "golang.org/x/mod/semver"
)

// Bump is a version increment kind.
type Bump string

const (
	Major      Bump = "major"
	Minor      Bump = "minor"
	Patch      Bump = "patch"
	PreMajor   Bump = "premajor"
	PreMinor   Bump = "preminor"
	PrePatch   Bump = "prepatch"
	PreRelease Bump = "prerelease"
)

// IsValid reports whether version is a valid semantic version (no "v" prefix).
func IsValid(version string) bool {
	return modsemver.IsValid("v" + version)
}

// Inc applies a bump kind to a version and returns the incremented version.
// The input must be a valid semantic version without a "v" prefix.
func Inc(version string, bump Bump) (string, error) {
	if !IsValid(version) {
		return "", fmt.Errorf("invalid semantic version: %q", version)
	}

	major, minor, patch, prerelease, err := parse(version)
	if err != nil {
		return "", err
	}

	switch bump {
	case Major:
		major++
		minor = 0
		patch = 0
		prerelease = ""
	case Minor:
		minor++
		patch = 0
		prerelease = ""
	case Patch:
		patch++
		prerelease = ""
	case PreMajor:
		major++
		minor = 0
		patch = 0
		prerelease = "0"
	case PreMinor:
		minor++
		patch = 0
		prerelease = "0"
	case PrePatch:
		patch++
		prerelease = "0"
	case PreRelease:
		if prerelease == "" {
			patch++
			prerelease = "0"
			break
		}
		// Bump the trailing numeric part if there is one.
		parts := strings.Split(prerelease, ".")
		last := parts[len(parts)-1]
		if n, err := strconv.Atoi(last); err == nil {
			parts[len(parts)-1] = strconv.Itoa(n + 1)
			prerelease = strings.Join(parts, ".")
		} else {
			prerelease = prerelease + ".0"
		}
	default:
		return "", fmt.Errorf("unknown bump kind: %q", bump)
	}

	return format(major, minor, patch, prerelease), nil
}

func parse(version string) (major, minor, patch int, prerelease string, err error) {
	// Drop build metadata, split off the prerelease.
	base, _, _ := strings.Cut(version, "+")
	base, prerelease, _ = strings.Cut(base, "-")

	nums := strings.Split(base, ".")
	if len(nums) != 3 {
		err = fmt.Errorf("unexpected version format: %q", version)
		return
	}
	if major, err = strconv.Atoi(nums[0]); err != nil {
		return
	}
	if minor, err = strconv.Atoi(nums[1]); err != nil {
		return
	}
	patch, err = strconv.Atoi(nums[2])
	return
}

func format(major, minor, patch int, prerelease string) string {
	base := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if prerelease != "" {
		return base + "-" + prerelease
	}
	return base
}
