// Package pypi queries the pypi.org JSON API for published versions.
package pypi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/git-pkgs/releasers/client"
)

// DefaultURL is the public PyPI instance.
const DefaultURL = "https://pypi.org"

const ecosystem = "pypi"

// Registry is a read-only client for a PyPI-compatible JSON API.
type Registry struct {
	baseURL string
	client  *client.BreakerClient
}

// New creates a registry client. An empty baseURL selects pypi.org; a nil
// client gets the default retrying client.
func New(baseURL string, c *client.Client) *Registry {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Registry{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client.NewBreakerClient(c),
	}
}

// Ecosystem returns the PURL type for this registry.
func (r *Registry) Ecosystem() string {
	return ecosystem
}

type packageResponse struct {
	Info     infoBlock                `json:"info"`
	Releases map[string][]releaseFile `json:"releases"`
}

type infoBlock struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type releaseFile struct {
	UploadTime   string `json:"upload_time"`
	Yanked       bool   `json:"yanked"`
	YankedReason string `json:"yanked_reason"`
}

// Version is a published release of a package.
type Version struct {
	Number      string
	PublishedAt time.Time
	Yanked      bool
}

// NotFoundError indicates the package has never been published.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: package %s not found", ecosystem, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return client.ErrNotFound
}

// FetchVersions retrieves all published versions of a package.
func (r *Registry) FetchVersions(ctx context.Context, name string) ([]Version, error) {
	url := fmt.Sprintf("%s/pypi/%s/json", r.baseURL, NormalizeName(name))

	var resp packageResponse
	if err := r.client.GetJSON(ctx, url, &resp); err != nil {
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) && httpErr.IsNotFound() {
			return nil, &NotFoundError{Name: name}
		}
		return nil, err
	}

	versions := make([]Version, 0, len(resp.Releases))
	for num, files := range resp.Releases {
		v := Version{Number: num}
		if len(files) > 0 {
			file := files[0]
			if file.UploadTime != "" {
				v.PublishedAt, _ = time.Parse("2006-01-02T15:04:05", file.UploadTime)
			}
			v.Yanked = file.Yanked
		}
		versions = append(versions, v)
	}

	return versions, nil
}

// VersionExists reports whether the exact version string is published.
// A package that has never been published reports false, not an error.
func (r *Registry) VersionExists(ctx context.Context, name, version string) (bool, error) {
	versions, err := r.FetchVersions(ctx, name)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}

	for _, v := range versions {
		if v.Number == version {
			return true, nil
		}
	}
	return false, nil
}

// LatestVersion returns the most recently published non-yanked version.
// Returns nil if no valid versions exist.
func (r *Registry) LatestVersion(ctx context.Context, name string) (*Version, error) {
	versions, err := r.FetchVersions(ctx, name)
	if err != nil {
		return nil, err
	}

	var valid []Version
	for _, v := range versions {
		if !v.Yanked {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].PublishedAt.After(valid[j].PublishedAt)
	})
	return &valid[0], nil
}

// ProjectURL returns the registry page for a package or version.
func (r *Registry) ProjectURL(name, version string) string {
	if version != "" {
		return fmt.Sprintf("%s/project/%s/%s/", r.baseURL, name, version)
	}
	return fmt.Sprintf("%s/project/%s/", r.baseURL, name)
}

// PURL returns the package URL for a package or version.
func PURL(name, version string) string {
	normalized := NormalizeName(name)
	if version != "" {
		return fmt.Sprintf("pkg:pypi/%s@%s", normalized, version)
	}
	return fmt.Sprintf("pkg:pypi/%s", normalized)
}

// NormalizeName lowercases a package name and folds separators to hyphens,
// matching PyPI's project name normalization.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}
