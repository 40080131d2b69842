// Package initcmd provides the init command.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tesseract/casing"
	"tesseract/internal/config"
	"tesseract/internal/view"
)

type initOptions struct {
	path     string
	keyCase  string
	packages []string
	force    bool
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a tesseract.yaml with the default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runInit(view.NewRenderer(cmd.OutOrStdout(), noColor), opts)
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", config.DefaultFile, "file to write")
	cmd.Flags().StringVar(&opts.keyCase, "key-case", casing.SnakeCase.ConfigName(), "attribute key casing")
	cmd.Flags().StringSliceVar(&opts.packages, "packages", nil, "package patterns to generate by default")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing file")

	return cmd
}

func runInit(r *view.Renderer, opts *initOptions) error {
	if _, err := os.Stat(opts.path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", opts.path)
	}

	cfg := config.Default()
	cfg.KeyCase = opts.keyCase
	cfg.Packages = opts.packages

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.WriteFile(cfg, opts.path); err != nil {
		return err
	}

	r.Success("wrote " + opts.path)

	return nil
}
