// Package gencmd provides the gen command.
package gencmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"tesseract/internal/cmd/cmdutil"
	"tesseract/internal/gen"
)

type genOptions struct {
	dryRun   bool
	debugDir string
}

// NewCmdGen creates the gen command.
func NewCmdGen() *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate Render methods for annotated types",
		Long: `Analyze the given packages, extract every type annotated with
//html:tag_name and write one generated file per package holding their Node
and Render methods.

Nothing is written if any annotated type is invalid.`,
		Example: `  # Generate for the package in the current directory
  tesseract-gen gen

  # From a go:generate directive
  //go:generate go run tesseract/cmd/tesseract-gen gen .

  # Print instead of writing
  tesseract-gen gen ./examples/site --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			return runGen(env, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print generated code instead of writing it")
	cmd.Flags().StringVar(&opts.debugDir, "debug-dir", "", "write unformatted output here when formatting fails")

	return cmd
}

func runGen(env *cmdutil.Env, args []string, opts *genOptions) error {
	graph, err := env.Load(env.Patterns(args))
	if err != nil {
		return err
	}

	plan, err := env.Synthesize(graph)
	if err != nil {
		return err
	}

	cfg := gen.ConfigFrom(env.Config)
	cfg.DebugDir = opts.debugDir

	files, err := gen.NewGenerator(cfg, env.Logger).Generate(plan)
	if err != nil {
		return err
	}

	if opts.dryRun {
		for _, f := range files {
			env.View.Text("// " + filepath.Join(f.Dir, f.Filename))
			env.View.Text(string(f.Content))
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		env.Logger.Info("wrote file", slog.String("path", filepath.Join(f.Dir, f.Filename)))
	}

	env.View.Success(fmt.Sprintf("generated %d file(s) for %d type(s)", len(files), len(plan.Definitions)))

	return nil
}
