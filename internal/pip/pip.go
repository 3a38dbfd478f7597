// Package pip provides a release plugin for setup.cfg-based Python packages.
//
// The plugin reads package identity from setup.cfg, rewrites its version
// field for releases, and drives the external packaging toolchain
// (python3 setup.py, twine) for canary and full publishes.
package pip

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/git-pkgs/releasers/internal/core"
	"github.com/git-pkgs/releasers/internal/execx"
	"github.com/git-pkgs/releasers/internal/pypi"
	"github.com/git-pkgs/releasers/internal/setupcfg"
)

const (
	pluginName     = "pip"
	namespacedName = "releasers-plugin-pip"
	ecosystem      = "pypi"
)

func init() {
	core.Register(pluginName, func(opts core.Options) (core.Plugin, error) {
		return New(opts)
	})
}

// Plugin releases setup.cfg-based Python packages.
type Plugin struct {
	name     string // package name, validated at construction
	dir      string
	custom   string // custom upload repository, "" for the default
	out      io.Writer
	log      *logrus.Logger
	runner   execx.Runner
	registry *pypi.Registry // nil unless the preflight is enabled
}

// New constructs the plugin. It locates and parses setup.cfg immediately
// and fails when the file is absent or has no [metadata] name, so a driver
// never registers hooks for a broken package.
func New(opts core.Options) (*Plugin, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if opts.Runner == nil {
		opts.Runner = execx.Local{}
	}

	f, err := setupcfg.Load(opts.Dir)
	if err != nil {
		return nil, err
	}

	p := &Plugin{
		name:   f.Name(),
		dir:    opts.Dir,
		custom: opts.Repository,
		out:    opts.Out,
		log:    opts.Logger,
		runner: opts.Runner,
	}
	if opts.CheckRegistry {
		p.registry = pypi.New(opts.RegistryURL, opts.Client)
	}
	return p, nil
}

// Ecosystem returns the PURL type this plugin releases for.
func (p *Plugin) Ecosystem() string {
	return ecosystem
}

// Name returns the plugin's configuration name.
func (p *Plugin) Name() string {
	return pluginName
}

// load re-reads setup.cfg. The on-disk file is the single source of truth;
// nothing is cached between hook invocations.
func (p *Plugin) load() (*setupcfg.File, error) {
	return setupcfg.Load(p.dir)
}

// PreviousVersion returns the version field exactly as stored.
func (p *Plugin) PreviousVersion(ctx context.Context) (string, error) {
	f, err := p.load()
	if err != nil {
		return "", err
	}
	version, ok := f.Version()
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrNoVersion, f.Path())
	}
	return version, nil
}

// Author returns the package author name and email.
func (p *Plugin) Author(ctx context.Context) (*core.Author, error) {
	f, err := p.load()
	if err != nil {
		return nil, err
	}
	name, email := f.Author()
	return &core.Author{Name: name, Email: email}, nil
}

// Repository parses the owner/repo pair out of the url field. A missing or
// unparseable URL yields nil with no error.
func (p *Plugin) Repository(ctx context.Context) (*core.Repository, error) {
	f, err := p.load()
	if err != nil {
		return nil, err
	}
	return parseRepository(f.URL()), nil
}

func parseRepository(raw string) *core.Repository {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !strings.Contains(u.Host, "github.com") {
		return nil
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return nil
	}
	return &core.Repository{Owner: segments[0], Repo: segments[1]}
}

// ValidateConfig checks a configuration map against the plugin's declared
// option shape. Names other than "pip" and its namespaced variant are not
// this plugin's concern and return nil.
func (p *Plugin) ValidateConfig(pluginName string, config map[string]any) []error {
	if pluginName != p.Name() && pluginName != namespacedName {
		return nil
	}
	_, findings := core.DecodeOptions(config)
	return findings
}
