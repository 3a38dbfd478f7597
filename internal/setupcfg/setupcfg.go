// Package setupcfg reads and rewrites setup.cfg package descriptors.
package setupcfg

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// FileName is the fixed descriptor name searched for in the package directory.
const FileName = "setup.cfg"

// ErrNotFound is returned when the package directory has no setup.cfg.
var ErrNotFound = errors.New("setup.cfg not found")

// MissingKeyError indicates a required metadata key is absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("setup.cfg: [metadata] has no %q key", e.Key)
}

// File is a parsed setup.cfg. The on-disk file is the source of truth;
// callers re-Load before every version-dependent operation.
type File struct {
	path     string
	metadata *ini.Section
}

// Load locates and parses setup.cfg in dir. It fails if the file is absent,
// the [metadata] section is missing, or the name key is missing.
func Load(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
		}
		return nil, err
	}

	doc, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	metadata, err := doc.GetSection("metadata")
	if err != nil {
		return nil, fmt.Errorf("%s: no [metadata] section", path)
	}
	if !metadata.HasKey("name") {
		return nil, &MissingKeyError{Key: "name"}
	}

	return &File{path: path, metadata: metadata}, nil
}

// Path returns the location of the descriptor on disk.
func (f *File) Path() string {
	return f.path
}

// Name returns the package name. Presence is guaranteed by Load.
func (f *File) Name() string {
	return f.metadata.Key("name").String()
}

// Version returns the stored version string byte-for-byte, and whether the
// key is present.
func (f *File) Version() (string, bool) {
	if !f.metadata.HasKey("version") {
		return "", false
	}
	return f.metadata.Key("version").String(), true
}

// Author returns the author name and email. The email is resolved from
// author_email first, then author-email; first present value wins.
func (f *File) Author() (name, email string) {
	if f.metadata.HasKey("author") {
		name = f.metadata.Key("author").String()
	}
	for _, key := range []string{"author_email", "author-email"} {
		if f.metadata.HasKey(key) {
			email = f.metadata.Key(key).String()
			break
		}
	}
	return name, email
}

// URL returns the project home-page URL, or "" when absent.
func (f *File) URL() string {
	if !f.metadata.HasKey("url") {
		return ""
	}
	return f.metadata.Key("url").String()
}

// ReplaceVersion rewrites the first occurrence of old with new in the raw
// file text. It is a literal substitution, not a structured rewrite; it
// relies on the version string being unique enough in the file. When old
// does not occur the file is left untouched and no error is reported.
func (f *File) ReplaceVersion(old, new string) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.path, err)
	}
	if !bytes.Contains(data, []byte(old)) {
		return nil
	}
	data = bytes.Replace(data, []byte(old), []byte(new), 1)
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	return nil
}
