package install

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/slekup/blue/internal/errors"
)

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) error {
	return f(ctx, name, args...)
}

// ExecRunner runs commands with os/exec. Combined output is attached to
// the error when the command fails.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return errors.Wrapf(err, "%s: %s", name, msg)
		}
		return errors.Wrapf(err, "running %s", name)
	}
	return nil
}
