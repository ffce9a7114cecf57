package check

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/slekup/blue/internal/config"
)

// stubCheck returns a fixed result.
type stubCheck struct {
	name     string
	category string
	status   Severity
	ran      *int
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return s.category }

func (s *stubCheck) Run(context.Context) *CheckResult {
	if s.ran != nil {
		*s.ran++
	}
	return &CheckResult{Name: s.name, Category: s.category, Status: s.status, Message: s.status.String()}
}

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func loadWorkspace(t *testing.T, fsys afero.Fs, content string) *config.Workspace {
	t.Helper()
	const path = "/work/demo/blue.toml"
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
	ws, err := config.LoadWorkspace(fsys, path)
	require.NoError(t, err)
	return ws
}

func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", &execNotFound{name: name}
	}
}

type execNotFound struct{ name string }

func (e *execNotFound) Error() string {
	return `exec: "` + e.name + `": executable file not found in $PATH`
}

func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
