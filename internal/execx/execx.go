// Package execx runs external packaging and VCS commands.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner executes a command and waits for it to finish. Implementations
// propagate any non-zero exit as an error; there are no retries.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// Local runs commands on the local system.
type Local struct{}

// Run executes name with args in dir, capturing stderr for error detail.
func (Local) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s failed: %w, detail: %s", name, err, stderr.String())
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
