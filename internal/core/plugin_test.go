package core

import "testing"

type stubPlugin struct{ Plugin }

func (stubPlugin) Ecosystem() string { return "stub" }

func TestRegisterAndNew(t *testing.T) {
	Register("stub", func(opts Options) (Plugin, error) {
		return stubPlugin{}, nil
	})

	p, err := New("stub", Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Ecosystem() != "stub" {
		t.Errorf("Ecosystem() = %q, want %q", p.Ecosystem(), "stub")
	}

	found := false
	for _, name := range SupportedEcosystems() {
		if name == "stub" {
			found = true
		}
	}
	if !found {
		t.Error("registered plugin missing from SupportedEcosystems")
	}
}

func TestNewUnknownEcosystem(t *testing.T) {
	if _, err := New("smalltalk", Options{}); err == nil {
		t.Error("expected error for unknown ecosystem")
	}
}
