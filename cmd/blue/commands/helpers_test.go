package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/slekup/blue/internal/check"
	"github.com/slekup/blue/internal/install"
)

// resetState restores package globals that cobra and tests mutate.
func resetState(t *testing.T) {
	t.Helper()

	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	viper.Reset()

	verbosity, quiet, logFormat, logFile = 0, false, "text", ""
	checkConfig, checkFormat = "", string(check.FormatText)
	for _, name := range []string{"log-format", "log-file", "verbose", "quiet"} {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
	for _, name := range []string{"version", "help"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}

	origFS, origOpts, origEnv, origExe := workspaceFS, checkOptions, newInstallEnv, executable
	t.Cleanup(func() {
		workspaceFS, checkOptions, newInstallEnv, executable = origFS, origOpts, origEnv, origExe
		viper.Reset()
		closeLogFile()
	})
	workspaceFS = afero.NewMemMapFs()
	checkOptions = check.Options{}
}

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// stubInstallEnv makes bootstrap run against env.
func stubInstallEnv(env install.Env) {
	newInstallEnv = func(context.Context) install.Env { return env }
}
