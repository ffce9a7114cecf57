package check

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/slekup/blue/internal/config"
	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/logging"
)

// Options supplies the lookups used by requirement checks. Nil fields
// fall back to the real machine.
type Options struct {
	// FS resolves required files.
	FS afero.Fs

	// LookPath resolves required commands.
	LookPath func(file string) (string, error)

	// LookupEnv reads required environment variables.
	LookupEnv func(key string) (string, bool)
}

func (o Options) withDefaults() Options {
	if o.FS == nil {
		o.FS = afero.NewOsFs()
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.LookupEnv == nil {
		o.LookupEnv = os.LookupEnv
	}
	return o
}

// ForWorkspace returns a runner holding a config check followed by one
// check per declared requirement, in file order.
func ForWorkspace(ws *config.Workspace, opts Options) *Runner {
	opts = opts.withDefaults()

	r := NewRunner(ws.Workspace.Name)
	r.AddCheck(NewConfigCheck(ws))
	for _, name := range ws.Requirements.Commands {
		r.AddCheck(NewCommandCheck(name, opts.LookPath))
	}
	for _, p := range ws.Requirements.Files {
		r.AddCheck(NewFileCheck(opts.FS, ws.Dir(), p))
	}
	for _, key := range ws.Requirements.Env {
		r.AddCheck(NewEnvCheck(key, opts.LookupEnv))
	}
	return r
}

// CommandCheck verifies a command resolves on PATH.
type CommandCheck struct {
	command  string
	lookPath func(string) (string, error)
}

var _ Check = (*CommandCheck)(nil)

// NewCommandCheck creates a check for command.
func NewCommandCheck(command string, lookPath func(string) (string, error)) *CommandCheck {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &CommandCheck{command: command, lookPath: lookPath}
}

// Name returns the command being checked.
func (c *CommandCheck) Name() string { return c.command }

// Category returns "command".
func (c *CommandCheck) Category() string { return "command" }

// Run looks the command up on PATH.
func (c *CommandCheck) Run(_ context.Context) *CheckResult {
	resolved, err := c.lookPath(c.command)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "command not found on PATH",
			Details:  map[string]any{"error": err.Error()},
			FixHint:  fmt.Sprintf("install %s or add its directory to PATH", c.command),
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "found at " + resolved,
		Details:  map[string]any{"path": resolved},
	}
}

// FileCheck verifies a file or directory exists in the workspace.
type FileCheck struct {
	fsys afero.Fs
	dir  string
	path string
}

var _ Check = (*FileCheck)(nil)

// NewFileCheck creates a check for path. Relative paths are resolved
// against dir.
func NewFileCheck(fsys afero.Fs, dir, path string) *FileCheck {
	return &FileCheck{fsys: fsys, dir: dir, path: path}
}

// Name returns the path as written in blue.toml.
func (c *FileCheck) Name() string { return c.path }

// Category returns "file".
func (c *FileCheck) Category() string { return "file" }

// Run stats the file.
func (c *FileCheck) Run(_ context.Context) *CheckResult {
	full := c.path
	if !filepath.IsAbs(full) {
		full = filepath.Join(c.dir, full)
	}

	info, err := c.fsys.Stat(full)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "file does not exist",
			Details:  map[string]any{"path": full},
			FixHint:  "create " + full,
		}
	case err != nil:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot stat file: %v", err),
			Details:  map[string]any{"path": full},
		}
	}

	kind := "file"
	if info.IsDir() {
		kind = "directory"
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  kind + " exists",
		Details:  map[string]any{"path": full, "type": kind},
	}
}

// EnvCheck verifies an environment variable is set and non-empty.
type EnvCheck struct {
	key       string
	lookupEnv func(string) (string, bool)
}

var _ Check = (*EnvCheck)(nil)

// NewEnvCheck creates a check for key.
func NewEnvCheck(key string, lookupEnv func(string) (string, bool)) *EnvCheck {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &EnvCheck{key: key, lookupEnv: lookupEnv}
}

// Name returns the variable name.
func (c *EnvCheck) Name() string { return c.key }

// Category returns "env".
func (c *EnvCheck) Category() string { return "env" }

// Run reads the variable. Secret-looking values are masked in the result.
func (c *EnvCheck) Run(_ context.Context) *CheckResult {
	value, ok := c.lookupEnv(c.key)
	switch {
	case !ok:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "environment variable is not set",
			FixHint:  fmt.Sprintf("export %s=<value>", c.key),
		}
	case value == "":
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "environment variable is empty",
			FixHint:  fmt.Sprintf("export %s=<value>", c.key),
		}
	}
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "set",
		Details:  map[string]any{"value": logging.Redact(c.key, value)},
	}
}

// ConfigCheck reports problems in blue.toml itself.
type ConfigCheck struct {
	ws *config.Workspace
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check of ws's content.
func NewConfigCheck(ws *config.Workspace) *ConfigCheck {
	return &ConfigCheck{ws: ws}
}

// Name returns the workspace file name.
func (c *ConfigCheck) Name() string { return "blue.toml" }

// Category returns "config".
func (c *ConfigCheck) Category() string { return "config" }

// Run validates the workspace. Unknown keys alone only warn.
func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	errs := config.Validate(c.ws)
	if len(errs) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "valid",
			Details:  map[string]any{"path": c.ws.Path},
		}
	}

	status := SeverityWarning
	issues := make([]string, 0, len(errs))
	for _, err := range errs {
		issues = append(issues, describeIssue(err))
		if !errors.Is(err, config.ErrUnknownKey) {
			status = SeverityError
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   status,
		Message:  fmt.Sprintf("%d issue(s) found", len(errs)),
		Details:  map[string]any{"path": c.ws.Path, "issues": issues},
		FixHint:  "edit " + c.ws.Path,
	}
}

func describeIssue(err error) string {
	var fe *config.FieldError
	if errors.As(err, &fe) && fe.Line > 0 {
		return fmt.Sprintf("line %d: %s", fe.Line, fe.Error())
	}
	return err.Error()
}
