// Package commands implements the CLI commands for blue.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	buildinfo "github.com/slekup/blue/cmd"
	"github.com/slekup/blue/internal/config"
	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/logging"
	"github.com/slekup/blue/internal/paths"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "BLUE_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// settings holds the user settings loaded by initConfig.
var settings *config.Settings

// settingsErr holds any error that occurred while loading settings.
var settingsErr error

// openLogFile is the handle behind --log-file, closed by Execute.
var openLogFile io.Closer

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = buildinfo.Version
	rootCmd.SetVersionTemplate("blue version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewUsageError(err, fmt.Sprintf("Run '%s --help' for usage", c.CommandPath()))
	})
}

func initConfig() {
	config.Init()
	settings, settingsErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "blue",
	Short: "Fast and extensible workspace manager",
	Long: `blue is a fast and extensible workspace manager.

Run 'blue bootstrap' once after downloading to install blue into a
per-user directory and add that directory to your PATH. Inside a
workspace, 'blue check' verifies the requirements declared in blue.toml.`,
	Example: `  # Install blue and add it to PATH
  blue bootstrap

  # Check the current workspace
  blue check

  # Print where the running binary lives
  blue bin`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags and
// user settings.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUsageError(errors.New("cannot use --quiet and --verbose together"),
			"Use either --quiet or --verbose")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, file := logFormat, logFile
	if settings != nil {
		flags := cmd.Flags()
		if !flags.Changed("log-format") && settings.LogFormat != "" {
			format = settings.LogFormat
		}
		if !flags.Changed("log-file") && settings.LogFile != "" {
			file = settings.LogFile
		}
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: logging.Format(format),
		Output: cmd.ErrOrStderr(),
	})}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewFailure(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		closeLogFile()
		openLogFile = f
		// File output uses JSON format
		handlers = append(handlers, logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if settingsErr != nil {
		logger.Warn("ignoring user settings", "dir", paths.UserConfigDir(), "err", settingsErr)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func closeLogFile() {
	if openLogFile != nil {
		_ = openLogFile.Close()
		openLogFile = nil
	}
}

// PrintError writes err and any suggestion it carries to w. An ExitError
// without an underlying error has already been reported and prints nothing.
func PrintError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	hasExit := errors.As(err, &exitErr)
	if hasExit && exitErr.Err == nil {
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err)
	if hasExit && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}

// Execute runs the root command.
func Execute() error {
	defer closeLogFile()
	return rootCmd.Execute()
}
