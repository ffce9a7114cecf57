package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/install"
	"github.com/slekup/blue/internal/logging"
)

// newInstallEnv builds the environment bootstrap runs against.
var newInstallEnv = install.DefaultEnv

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Install blue into the user's system",
	Long: `Copy the running blue binary into a per-user directory and add that
directory to PATH.

Install locations:
  Linux    ~/.blue/bin       (PATH export appended to ~/.bashrc)
  macOS    /usr/local/bin/.blue/bin (PATH export appended to ~/.bash_profile)
  Windows  %USERPROFILE%\.blue\bin  (user PATH updated with setx)

Running bootstrap again replaces the installed binary. On Linux and macOS
the PATH export is only added once. On Windows the directory is prepended
to the user PATH on every run.`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	env := newInstallEnv(ctx)
	env.Logger = logging.FromContext(ctx)
	env.Workspace = optionalWorkspace(ctx)

	res, err := install.Bootstrap(ctx, env)
	if err != nil {
		return errors.NewFailure(err, bootstrapSuggestion(err))
	}

	if reg := res.Registration; reg != nil && reg.Warning != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", reg.Warning)
		fmt.Fprintf(cmd.ErrOrStderr(), "Add %s to your PATH manually.\n", res.Target.Dir)
	}

	if !quiet {
		printBootstrapResult(cmd.OutOrStdout(), res)
	}
	return nil
}

func printBootstrapResult(w io.Writer, res *install.Result) {
	if res.Binary.InPlace {
		fmt.Fprintf(w, "blue is already installed at %s\n", res.Binary.Dest)
	} else {
		fmt.Fprintf(w, "Installed blue to %s\n", res.Binary.Dest)
	}

	reg := res.Registration
	switch {
	case reg.Warning != nil:
		return
	case reg.Method == install.MethodUserEnv:
		fmt.Fprintf(w, "Added %s to the user PATH\n", res.Target.Dir)
		fmt.Fprintln(w, "Please restart your terminal to use blue")
	case reg.Changed:
		fmt.Fprintf(w, "Added %s to PATH in %s\n", res.Target.Dir, reg.ProfilePath)
		fmt.Fprintf(w, "Please restart your terminal to use blue or run: source %s\n", reg.ProfilePath)
	default:
		fmt.Fprintf(w, "%s is already on PATH in %s\n", res.Target.Dir, reg.ProfilePath)
	}
}

// bootstrapSuggestion returns a hint for a failed bootstrap.
func bootstrapSuggestion(err error) string {
	switch {
	case errors.Is(err, errors.ErrUnsupportedPlatform):
		return "blue can bootstrap itself on Windows, Linux and macOS only"
	case errors.Is(err, errors.ErrHomeDirUnavailable):
		return "Make sure HOME (USERPROFILE on Windows) is set"
	case errors.Is(err, errors.ErrDirCreateFailed):
		return "Check that you can create the install directory; on macOS /usr/local/bin must be writable"
	case errors.Is(err, errors.ErrSelfPathUnavailable):
		return "Run bootstrap from the downloaded blue binary"
	case errors.Is(err, errors.ErrCopyFailed):
		return "Check that the install directory is writable"
	case errors.Is(err, errors.ErrProfileOpenFailed), errors.Is(err, errors.ErrProfileWriteFailed):
		return "Check the permissions of your shell profile"
	default:
		return ""
	}
}
