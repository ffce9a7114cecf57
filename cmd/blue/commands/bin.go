package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/paths"
)

// executable locates the running binary.
var executable = paths.Executable

func init() {
	rootCmd.AddCommand(binCmd)
}

var binCmd = &cobra.Command{
	Use:   "bin",
	Short: "Returns the path to the binary",
	Long:  `Print the absolute path of the running blue binary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := executable()
		if err != nil {
			return errors.NewFailure(err, "")
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}
