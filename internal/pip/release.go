package pip

import (
	"context"
	"fmt"
	"strings"

	"github.com/git-pkgs/releasers/internal/core"
	"github.com/git-pkgs/releasers/internal/semver"
	"github.com/git-pkgs/releasers/internal/setupcfg"
)

// computeVersion reads the stored version and applies the bump kind.
// It returns the parsed file so write paths reuse the same read.
func (p *Plugin) computeVersion(bump core.Bump) (f *setupcfg.File, old, next string, err error) {
	f, err = p.load()
	if err != nil {
		return nil, "", "", err
	}
	old, ok := f.Version()
	if !ok {
		return nil, "", "", fmt.Errorf("%w: %s", core.ErrNoVersion, f.Path())
	}
	next, err = semver.Inc(old, bump)
	if err != nil {
		return nil, "", "", fmt.Errorf("cannot bump %q by %s: %w", old, bump, err)
	}
	return f, old, next, nil
}

// emit reports a would-be version on a dry run: a bare line on the quiet
// channel, or a human log line otherwise.
func (p *Plugin) emit(version string, quiet bool) {
	if quiet {
		fmt.Fprintln(p.out, version)
		return
	}
	p.log.Infof("would have published: %s", version)
}

// Version bumps the version field in setup.cfg. Dry runs touch nothing.
func (p *Plugin) Version(ctx context.Context, opts core.VersionOptions) error {
	f, old, next, err := p.computeVersion(opts.Bump)
	if err != nil {
		return err
	}

	if opts.DryRun {
		p.emit(next, opts.Quiet)
		return nil
	}

	return f.ReplaceVersion(old, next)
}

// canaryTransform rewrites a host canary identifier such as
// "-canary.1a2b3c4" into a PEP 440 local dev identifier: "-dev0+1a2b3c4".
// The chain is order-dependent and intentionally literal.
func canaryTransform(identifier string) string {
	identifier = strings.Replace(identifier, "-canary", "-dev", 1)
	identifier = strings.Replace(identifier, ".", "+", 1)
	identifier = strings.Replace(identifier, "dev+", "dev0+", 1)
	return identifier
}

// installDetails is the fixed install instruction template returned from a
// canary publish.
func installDetails(name, version string) string {
	return fmt.Sprintf("Install the canary version with:\n\n`pip install %s==%s`", name, version)
}

// Canary builds and uploads a pre-release test version.
func (p *Plugin) Canary(ctx context.Context, opts core.CanaryOptions) (*core.CanaryResult, error) {
	f, old, next, err := p.computeVersion(opts.Bump)
	if err != nil {
		return nil, err
	}
	canaryVersion := next + canaryTransform(opts.CanaryIdentifier)

	if opts.DryRun {
		p.emit(canaryVersion, opts.Quiet)
		return nil, nil
	}

	if err := f.ReplaceVersion(old, canaryVersion); err != nil {
		return nil, err
	}
	if err := p.build(ctx); err != nil {
		return nil, err
	}
	// Wheel and sdist artifacts replace the first version separator with a
	// dot on disk.
	artifactVersion := strings.Replace(canaryVersion, "-", ".", 1)
	if err := p.upload(ctx, artifactVersion); err != nil {
		return nil, err
	}

	return &core.CanaryResult{
		NewVersion: canaryVersion,
		Details:    installDetails(p.name, canaryVersion),
	}, nil
}

// Publish commits the working tree with the stored version, builds the
// distribution, and uploads it.
func (p *Plugin) Publish(ctx context.Context) error {
	f, err := p.load()
	if err != nil {
		return err
	}
	version, ok := f.Version()
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNoVersion, f.Path())
	}

	message := fmt.Sprintf("\"update version: %s [skip ci]\"", version)
	if err := p.runner.Run(ctx, p.dir, "git", "commit", "-am", message, "--no-verify"); err != nil {
		return err
	}
	if err := p.build(ctx); err != nil {
		return err
	}
	return p.upload(ctx, version)
}

func (p *Plugin) build(ctx context.Context) error {
	p.log.Debugf("building distribution for %s", p.name)
	return p.runner.Run(ctx, p.dir, "python3", "setup.py", "bdist_wheel", "sdist")
}

// upload pushes dist artifacts with twine, preflighting the registry when
// enabled so a duplicate version fails before twine does, with a clearer
// error.
func (p *Plugin) upload(ctx context.Context, version string) error {
	if p.registry != nil {
		exists, err := p.registry.VersionExists(ctx, p.name, version)
		if err != nil {
			return fmt.Errorf("registry preflight: %w", err)
		}
		if exists {
			return &core.AlreadyPublishedError{Ecosystem: ecosystem, Name: p.name, Version: version}
		}
	}

	args := []string{"-m", "twine", "upload"}
	if p.custom != "" {
		args = append(args, "--repository", p.custom)
	}
	args = append(args, fmt.Sprintf("dist/%s-%s*", p.name, version), "--verbose")

	p.log.Debugf("uploading %s %s", p.name, version)
	return p.runner.Run(ctx, p.dir, "python3", args...)
}
