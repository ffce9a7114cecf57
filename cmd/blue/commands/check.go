package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slekup/blue/internal/check"
	"github.com/slekup/blue/internal/config"
	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/logging"
)

var (
	checkConfig string
	checkFormat string
)

// checkOptions supplies lookups to requirement checks. FS defaults to
// workspaceFS.
var checkOptions check.Options

func init() {
	checkCmd.Flags().StringVarP(&checkConfig, "config", "c", "",
		"path to blue.toml (default: ./blue.toml)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", string(check.FormatText),
		"output format: text, json, yaml")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Checks if the workspace meets specified requirements",
	Long: `Check the requirements declared in blue.toml.

Each command under [requirements] must resolve on PATH, each file must
exist relative to the workspace, and each env variable must be set and
non-empty. Unknown keys in blue.toml are reported as warnings.

Exit codes:
  0 - All requirements met
  1 - A requirement failed or blue.toml is missing or invalid
  2 - Invalid flags`,
	Example: `  blue check
  blue check --format json
  blue check --config ../other/blue.toml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format, err := check.ParseFormat(checkFormat)
	if err != nil {
		return errors.NewUsageError(err, "Use --format text, json or yaml")
	}

	ws, err := config.LoadWorkspace(workspaceFS, checkConfig)
	switch {
	case errors.Is(err, errors.ErrNotFound) && checkConfig == "":
		fmt.Fprintln(cmd.OutOrStdout(), "No blue.toml found in current directory")
		return errors.NewExitError(nil, errors.ExitFailure)
	case errors.Is(err, errors.ErrNotFound):
		return errors.NewFailure(err, "Check the --config path")
	case err != nil:
		return errors.NewConfigError(err)
	}

	ctx := cmd.Context()
	logging.FromContext(ctx).Debug("checking workspace", "path", ws.Path, "workspace", ws.Workspace.Name)

	opts := checkOptions
	if opts.FS == nil {
		opts.FS = workspaceFS
	}
	report := check.ForWorkspace(ws, opts).Run(ctx)

	if err := check.NewReporter(cmd.OutOrStdout(), format).Report(report); err != nil {
		return errors.NewFailure(err, "")
	}

	if report.HasErrors() {
		return errors.NewExitError(
			errors.Wrapf(errors.ErrRequirementsUnmet, "%d of %d checks failed", report.Summary.Errors, report.Summary.Total()),
			errors.ExitFailure)
	}
	return nil
}
