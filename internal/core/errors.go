package core

import (
	"errors"
	"fmt"
)

// ErrNoVersion is returned by version-dependent hooks when the descriptor
// has no version field. Absence is never silently defaulted.
var ErrNoVersion = errors.New("no version found in package metadata")

// AlreadyPublishedError is returned by the registry preflight when the
// target version is already visible on the registry.
type AlreadyPublishedError struct {
	Ecosystem string
	Name      string
	Version   string
}

func (e *AlreadyPublishedError) Error() string {
	return fmt.Sprintf("%s: %s %s is already published", e.Ecosystem, e.Name, e.Version)
}
