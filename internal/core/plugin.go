package core

import (
	"context"
	"fmt"
	"sync"
)

// Plugin is the interface implemented by all ecosystem release plugins.
// A release driver invokes the hooks sequentially within a release cycle;
// plugins perform no locking of their own.
type Plugin interface {
	// Ecosystem returns the PURL type this plugin releases for (e.g. "pypi").
	Ecosystem() string

	// Name returns the plugin name used for configuration (e.g. "pip").
	Name() string

	// PreviousVersion returns the version currently recorded in the
	// package descriptor.
	PreviousVersion(ctx context.Context) (string, error)

	// Author returns the package author from the descriptor.
	Author(ctx context.Context) (*Author, error)

	// Repository returns the owner/repo pair parsed from the descriptor's
	// URL field, or nil when the URL is absent or not parseable.
	Repository(ctx context.Context) (*Repository, error)

	// Version bumps the descriptor's version in place.
	Version(ctx context.Context, opts VersionOptions) error

	// Canary builds and uploads a pre-release test version.
	Canary(ctx context.Context, opts CanaryOptions) (*CanaryResult, error)

	// Publish commits the working tree and uploads the current version.
	Publish(ctx context.Context) error

	// ValidateConfig checks a host-supplied configuration map against the
	// plugin's declared option shape. It returns nil for any plugin name
	// the plugin does not answer to.
	ValidateConfig(pluginName string, config map[string]any) []error
}

// Factory creates a plugin instance for the given options. Construction
// fails fast when the package descriptor is absent or invalid.
type Factory func(opts Options) (Plugin, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a plugin factory to the global registry.
// name is the plugin's configuration name (e.g. "pip").
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[name] = factory
}

// New creates a new release plugin by name.
func New(name string, opts Options) (Plugin, error) {
	mu.RLock()
	factory, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown ecosystem: %s", name)
	}

	return factory(opts)
}

// SupportedEcosystems returns all registered plugin names.
func SupportedEcosystems() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}
