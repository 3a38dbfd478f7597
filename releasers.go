// Package releasers provides release-automation plugins for package
// ecosystems: version bumps, canary publishes, and full publishes driven
// by a host release tool through a fixed set of hooks.
//
// The package currently supports pip (setup.cfg-based Python packaging).
//
// Basic usage:
//
//	import (
//		"context"
//		"github.com/git-pkgs/releasers"
//		_ "github.com/git-pkgs/releasers/internal/pip"
//	)
//
//	plugin, err := releasers.New("pip", releasers.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	previous, err := plugin.PreviousVersion(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(previous)
//
// To automatically import all supported ecosystems, use the imports
// subpackage:
//
//	import (
//		"github.com/git-pkgs/releasers"
//		_ "github.com/git-pkgs/releasers/all"
//	)
package releasers

import (
	"fmt"

	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/releasers/client"
	"github.com/git-pkgs/releasers/internal/core"
)

// Re-export types from internal/core
type (
	// Plugin is the interface implemented by all ecosystem release plugins.
	Plugin = core.Plugin

	// Options configure a plugin instance.
	Options = core.Options

	// Bump is a semantic-version increment kind.
	Bump = core.Bump

	// Author is the package author from the package descriptor.
	Author = core.Author

	// Repository identifies the project's source repository.
	Repository = core.Repository

	// VersionOptions are the inputs to the version hook.
	VersionOptions = core.VersionOptions

	// CanaryOptions are the inputs to the canary hook.
	CanaryOptions = core.CanaryOptions

	// CanaryResult is returned by a non-dry-run canary publish.
	CanaryResult = core.CanaryResult

	// AlreadyPublishedError is returned by the registry preflight.
	AlreadyPublishedError = core.AlreadyPublishedError
)

// Re-export types from client
type (
	// Client is an HTTP client with retry logic for registry APIs.
	Client = client.Client

	// BreakerClient wraps a Client with per-registry circuit breakers.
	BreakerClient = client.BreakerClient
)

// Re-export bump kinds
const (
	Major      = core.Major
	Minor      = core.Minor
	Patch      = core.Patch
	PreMajor   = core.PreMajor
	PreMinor   = core.PreMinor
	PrePatch   = core.PrePatch
	PreRelease = core.PreRelease
)

// Re-export errors
var (
	ErrNoVersion = core.ErrNoVersion
	ErrNotFound  = client.ErrNotFound
)

// Error types
type (
	HTTPError      = client.HTTPError
	RateLimitError = client.RateLimitError
)

// New creates a release plugin for the given ecosystem.
//
// Supported ecosystems: "pip"
func New(ecosystem string, opts Options) (Plugin, error) {
	return core.New(ecosystem, opts)
}

// DefaultClient returns a client with sensible defaults:
// - 30s timeout
// - 5 retries with exponential backoff
// - Retry on 429 and 5xx responses
func DefaultClient() *Client {
	return client.DefaultClient()
}

// NewClient creates a new client with the given options.
func NewClient(opts ...Option) *Client {
	return client.NewClient(opts...)
}

// Option configures a Client.
type Option = client.Option

// WithTimeout sets the HTTP client timeout.
var WithTimeout = client.WithTimeout

// WithMaxRetries sets the maximum number of retries.
var WithMaxRetries = client.WithMaxRetries

// SupportedEcosystems returns all registered plugin names.
// Note: ecosystems must be imported to be registered.
func SupportedEcosystems() []string {
	return core.SupportedEcosystems()
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components.
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}

// purlPlugins maps PURL types to plugin configuration names.
var purlPlugins = map[string]string{
	"pypi": "pip",
}

// NewFromPURL creates a release plugin from a PURL and returns the parsed
// package name and version (version is empty if not in the PURL).
func NewFromPURL(purlStr string, opts Options) (Plugin, string, string, error) {
	p, err := ParsePURL(purlStr)
	if err != nil {
		return nil, "", "", err
	}

	name, ok := purlPlugins[p.Type]
	if !ok {
		return nil, "", "", fmt.Errorf("no release plugin for PURL type %q", p.Type)
	}

	plugin, err := New(name, opts)
	if err != nil {
		return nil, "", "", err
	}

	return plugin, p.Name, p.Version, nil
}
