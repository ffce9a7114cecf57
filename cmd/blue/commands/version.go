package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	buildinfo "github.com/slekup/blue/cmd"
	"github.com/slekup/blue/internal/install"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Gets the currently installed version of blue",
	Long:  `Print the version, commit, and build date of blue.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "blue version %s\n", buildinfo.Version)
		fmt.Fprintf(w, "  commit:    %s\n", buildinfo.Commit)
		fmt.Fprintf(w, "  built:     %s\n", buildinfo.Date)
		fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
		fmt.Fprintf(w, "  platform:  %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, install.CurrentOS())
	},
}
