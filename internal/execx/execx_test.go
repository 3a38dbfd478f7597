package execx

import (
	"context"
	"strings"
	"testing"
)

func TestLocalRun(t *testing.T) {
	if err := (Local{}).Run(context.Background(), t.TempDir(), "true"); err != nil {
		t.Errorf("expected success, got %v", err)
	}
}

func TestLocalRunNonZeroExit(t *testing.T) {
	err := (Local{}).Run(context.Background(), t.TempDir(), "false")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestLocalRunCapturesStderr(t *testing.T) {
	err := (Local{}).Run(context.Background(), t.TempDir(), "sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry stderr detail, got: %v", err)
	}
}

func TestLocalRunMissingCommand(t *testing.T) {
	if err := (Local{}).Run(context.Background(), t.TempDir(), "definitely-not-a-command"); err == nil {
		t.Fatal("expected error for missing command")
	}
}
