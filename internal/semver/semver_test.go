package semver

import "testing"

func TestInc(t *testing.T) {
	tests := []struct {
		version string
		bump    Bump
		want    string
	}{
		{"0.1.0", Minor, "0.2.0"},
		{"0.1.0", Major, "1.0.0"},
		{"0.1.0", Patch, "0.1.1"},
		{"1.8.99", Patch, "1.8.100"},
		{"1.2.3", PreMajor, "2.0.0-0"},
		{"1.2.3", PreMinor, "1.3.0-0"},
		{"1.2.3", PrePatch, "1.2.4-0"},
		{"1.2.3", PreRelease, "1.2.4-0"},
		{"1.2.3-0", PreRelease, "1.2.3-1"},
		{"1.2.3-alpha", PreRelease, "1.2.3-alpha.0"},
		{"1.2.3-alpha.4", PreRelease, "1.2.3-alpha.5"},
		{"1.2.3-rc.1", Major, "2.0.0"},
	}

	for _, tt := range tests {
		got, err := Inc(tt.version, tt.bump)
		if err != nil {
			t.Errorf("Inc(%q, %q) returned error: %v", tt.version, tt.bump, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Inc(%q, %q) = %q, want %q", tt.version, tt.bump, got, tt.want)
		}
	}
}

func TestIncInvalidVersion(t *testing.T) {
	for _, version := range []string{"0.1.nope", "not-a-version", "1.2", ""} {
		if _, err := Inc(version, Minor); err == nil {
			t.Errorf("Inc(%q, minor) expected error, got none", version)
		}
	}
}

func TestIncUnknownBump(t *testing.T) {
	if _, err := Inc("1.0.0", Bump("biggest")); err == nil {
		t.Error("expected error for unknown bump kind")
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"0.1.0", "1.8.99", "0.2.0-dev0+1a2b3c4", "1.0.0-rc.1"}
	for _, v := range valid {
		if !IsValid(v) {
			t.Errorf("IsValid(%q) = false, want true", v)
		}
	}

	invalid := []string{"0.1.nope", "1.2", "", "one.two.three"}
	for _, v := range invalid {
		if IsValid(v) {
			t.Errorf("IsValid(%q) = true, want false", v)
		}
	}
}
