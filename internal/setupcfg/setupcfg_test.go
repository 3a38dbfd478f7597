package setupcfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const minimal = `[metadata]
name = my-package
version = 0.1.0
author = Ada Lovelace
author_email = ada@example.com
url = https://github.com/example/my-package
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, minimal)

	f, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Name() != "my-package" {
		t.Errorf("Name() = %q, want %q", f.Name(), "my-package")
	}
	if v, ok := f.Version(); !ok || v != "0.1.0" {
		t.Errorf("Version() = %q, %v", v, ok)
	}
	if f.URL() != "https://github.com/example/my-package" {
		t.Errorf("unexpected URL: %q", f.URL())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMissingSection(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "[options]\npackages = find:\n")

	if _, err := Load(dir); err == nil {
		t.Error("expected error for missing [metadata] section")
	}
}

func TestLoadMissingName(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "[metadata]\nversion = 1.0.0\n")

	var missing *MissingKeyError
	_, err := Load(dir)
	if !errors.As(err, &missing) || missing.Key != "name" {
		t.Errorf("expected MissingKeyError for name, got %v", err)
	}
}

func TestVersionAbsent(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "[metadata]\nname = my-package\n")

	f, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := f.Version(); ok {
		t.Errorf("Version() = %q, want absent", v)
	}
}

func TestAuthorEmailKeys(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantEmail string
	}{
		{
			"underscore key preferred when both present",
			"[metadata]\nname = p\nauthor_email = under@example.com\nauthor-email = hyphen@example.com\n",
			"under@example.com",
		},
		{
			"underscore key only",
			"[metadata]\nname = p\nauthor_email = under@example.com\n",
			"under@example.com",
		},
		{
			"hyphen key only",
			"[metadata]\nname = p\nauthor-email = hyphen@example.com\n",
			"hyphen@example.com",
		},
		{
			"no email keys",
			"[metadata]\nname = p\nauthor = Someone\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			write(t, dir, tt.content)

			f, err := Load(dir)
			if err != nil {
				t.Fatal(err)
			}
			if _, email := f.Author(); email != tt.wantEmail {
				t.Errorf("email = %q, want %q", email, tt.wantEmail)
			}
		})
	}
}

func TestReplaceVersion(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, minimal)

	f, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.ReplaceVersion("0.1.0", "0.2.0"); err != nil {
		t.Fatalf("ReplaceVersion failed: %v", err)
	}

	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	want := `[metadata]
name = my-package
version = 0.2.0
author = Ada Lovelace
author_email = ada@example.com
url = https://github.com/example/my-package
`
	if string(data) != want {
		t.Errorf("file content after rewrite:\n%s\nwant:\n%s", data, want)
	}
}

func TestReplaceVersionFirstOccurrenceOnly(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "[metadata]\nname = p\nversion = 1.0.0\ndescription = needs 1.0.0 of something\n")

	f, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.ReplaceVersion("1.0.0", "1.1.0"); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(f.Path())
	want := "[metadata]\nname = p\nversion = 1.1.0\ndescription = needs 1.0.0 of something\n"
	if string(data) != want {
		t.Errorf("got:\n%s\nwant:\n%s", data, want)
	}
}

func TestReplaceVersionNoMatch(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, minimal)

	f, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	// Absent substring is a silent no-op.
	if err := f.ReplaceVersion("9.9.9", "1.0.0"); err != nil {
		t.Fatalf("ReplaceVersion returned error: %v", err)
	}

	data, _ := os.ReadFile(f.Path())
	if string(data) != minimal {
		t.Error("file changed despite no matching version string")
	}
}
