package backend

import (
	"context"
	"fmt"
	"os/exec"
)

// Runner executes external tools. It exists so tests can assert the exact
// argv a backend builds without spawning anything.
type Runner interface {
	// LookPath resolves an executable on PATH.
	LookPath(name string) (string, error)

	// Run executes name with args and waits for it to exit.
	// A nil error means exit status 0.
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs tools via os/exec.
type ExecRunner struct{}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w (output: %s)", name, err, string(out))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
