// Package core provides shared types and the plugin registry.
package core

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/git-pkgs/releasers/client"
	"github.com/git-pkgs/releasers/internal/execx"
	"github.com/git-pkgs/releasers/internal/semver"
)

// Bump is a semantic-version increment kind.
type Bump = semver.Bump

const (
	Major      = semver.Major
	Minor      = semver.Minor
	Patch      = semver.Patch
	PreMajor   = semver.PreMajor
	PreMinor   = semver.PreMinor
	PrePatch   = semver.PrePatch
	PreRelease = semver.PreRelease
)

// Author is the package author as recorded in the descriptor.
type Author struct {
	Name  string
	Email string
}

// Repository identifies the project's source repository.
type Repository struct {
	Owner string
	Repo  string
}

// VersionOptions are the inputs to the version hook.
type VersionOptions struct {
	Bump   Bump
	DryRun bool
	Quiet  bool
}

// CanaryOptions are the inputs to the canary hook.
type CanaryOptions struct {
	Bump             Bump
	CanaryIdentifier string
	DryRun           bool
	Quiet            bool
}

// CanaryResult is returned by a non-dry-run canary publish.
type CanaryResult struct {
	NewVersion string
	Details    string // markdown install instructions
}

// Options configure a plugin instance. Only Repository is settable from a
// host configuration map; the remaining fields are programmatic.
type Options struct {
	// Repository is an optional custom upload target name, passed to the
	// uploader as --repository.
	Repository string `mapstructure:"repository"`

	// Dir is the package directory. Defaults to the working directory.
	Dir string `mapstructure:"-"`

	// CheckRegistry enables the registry preflight: before uploading,
	// query the registry and fail if the target version already exists.
	CheckRegistry bool `mapstructure:"-"`

	// RegistryURL overrides the registry base URL for the preflight.
	RegistryURL string `mapstructure:"-"`

	// Out is the quiet machine-readable output channel for dry runs.
	// Defaults to os.Stdout.
	Out io.Writer `mapstructure:"-"`

	// Logger is the verbose human log. Defaults to a standard logger.
	Logger *logrus.Logger `mapstructure:"-"`

	// Runner executes external packaging and VCS commands.
	// Defaults to execx.Local.
	Runner execx.Runner `mapstructure:"-"`

	// Client performs registry HTTP requests for the preflight.
	Client *client.Client `mapstructure:"-"`
}
