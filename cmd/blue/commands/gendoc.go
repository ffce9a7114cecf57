package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/slekup/blue/internal/errors"
	"github.com/slekup/blue/internal/paths"
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		outputDir, _ := cmd.Flags().GetString("dir")
		format, _ := cmd.Flags().GetString("format")
		if outputDir == "" {
			return errors.NewUsageError(errors.New("output directory is required"), "Pass --dir <path>")
		}

		if err := paths.EnsureDir(afero.NewOsFs(), outputDir, 0); err != nil {
			return errors.Wrap(err, "creating output directory")
		}

		root := cmd.Root()
		root.DisableAutoGenTag = true

		switch format {
		case "markdown", "md":
			if err := doc.GenMarkdownTreeCustom(root, outputDir, filePrepender, linkHandler); err != nil {
				return errors.Wrap(err, "generating markdown")
			}
		case "man":
			header := &doc.GenManHeader{Title: "BLUE", Section: "1", Source: "blue " + root.Version}
			if err := doc.GenManTree(root, header, outputDir); err != nil {
				return errors.Wrap(err, "generating man pages")
			}
		default:
			return errors.NewUsageError(errors.Newf("unknown doc format %q", format), "Use --format markdown or man")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated in %s\n", outputDir)
		return nil
	},
}

func init() {
	genDocCmd.Flags().StringP("dir", "d", "", "Output directory for documentation")
	genDocCmd.Flags().String("format", "markdown", "Output format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// blue_bootstrap.md -> blue bootstrap
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
