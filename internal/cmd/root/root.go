// Package root provides the root command for the tesseract-gen CLI.
package root

import (
	"github.com/spf13/cobra"

	"tesseract/internal/cmd/check"
	"tesseract/internal/cmd/classify"
	"tesseract/internal/cmd/gencmd"
	"tesseract/internal/cmd/initcmd"
	"tesseract/internal/cmd/inspect"
	"tesseract/internal/version"
)

// NewCmdRoot creates the root command for tesseract-gen.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tesseract-gen",
		Short: "Generate markup renderers for annotated Go types",
		Long: `tesseract-gen reads Go types annotated with //html: directives and
html struct tags and generates Node and Render methods that serialize their
values into nested markup.

Get started by running: tesseract-gen init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ./tesseract.yaml if present)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.SetVersionTemplate("tesseract-gen version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(gencmd.NewCmdGen())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(inspect.NewCmdInspect())
	cmd.AddCommand(classify.NewCmdClassify())

	return cmd
}
