package install

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/slekup/blue/internal/config"
	"github.com/slekup/blue/internal/logging"
	"github.com/slekup/blue/internal/paths"
)

// Env carries everything the install stages need from the outside world.
type Env struct {
	// OS selects the platform strategy. The zero value refuses to install.
	OS OS

	// FS is used for the install directory, both ends of the binary copy
	// and the shell profile.
	FS afero.Fs

	// Home returns the user's home directory.
	Home func() (string, error)

	// Executable returns the path of the running binary.
	Executable func() (string, error)

	// Runner runs the Windows PATH update.
	Runner Runner

	// Logger receives progress and failure messages.
	Logger *slog.Logger

	// Workspace is the parsed blue.toml of the current directory, if any.
	Workspace *config.Workspace
}

// DefaultEnv returns an Env wired to the real machine.
func DefaultEnv(ctx context.Context) Env {
	return Env{
		OS:         CurrentOS(),
		FS:         afero.NewOsFs(),
		Home:       paths.ResolveHome,
		Executable: paths.Executable,
		Runner:     ExecRunner{},
		Logger:     logging.FromContext(ctx),
	}
}

func (e Env) withDefaults() Env {
	if e.FS == nil {
		e.FS = afero.NewOsFs()
	}
	if e.Home == nil {
		e.Home = paths.ResolveHome
	}
	if e.Executable == nil {
		e.Executable = paths.Executable
	}
	if e.Runner == nil {
		e.Runner = ExecRunner{}
	}
	if e.Logger == nil {
		e.Logger = logging.NewDiscard()
	}
	return e
}

// Result describes what a bootstrap run did. Fields are filled in stage
// order, so on error the stages that completed are still reported.
type Result struct {
	Target       *Target
	Binary       *Binary
	Registration *Registration
}

// Bootstrap installs the running executable: Resolve, InstallBinary and
// Register, stopping at the first error. Completed stages are not rolled
// back.
func Bootstrap(ctx context.Context, env Env) (*Result, error) {
	env = env.withDefaults()
	log := env.Logger.With("os", env.OS.String())

	log.Info("setting up blue")
	if env.Workspace != nil {
		log.Debug("workspace config loaded", "workspace", env.Workspace.Workspace.Name, "path", env.Workspace.Path)
	}

	res := &Result{}

	target, err := Resolve(env)
	if err != nil {
		log.Error("resolving install directory", "err", err)
		return res, err
	}
	res.Target = target

	bin, err := InstallBinary(env, target)
	if err != nil {
		return res, err
	}
	res.Binary = bin

	log.Info("adding directory to PATH", "dir", target.Dir)
	reg, err := Register(ctx, env, target)
	if err != nil {
		log.Error("registering install directory on PATH", "err", err)
		return res, err
	}
	res.Registration = reg

	return res, nil
}
