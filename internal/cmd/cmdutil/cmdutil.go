// Package cmdutil holds the setup shared by the tesseract-gen commands.
package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tesseract/internal/analyze"
	"tesseract/internal/config"
	"tesseract/internal/element"
	"tesseract/internal/gen"
	"tesseract/internal/view"
)

// Env is what a command needs to run.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	View   *view.Renderer
}

// Setup reads the global flags, loads the configuration and builds the
// logger and renderer.
func Setup(cmd *cobra.Command) (*Env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &Env{
		Config: cfg,
		Logger: NewLogger(cmd, verbose),
		View:   view.NewRenderer(cmd.OutOrStdout(), noColor),
	}, nil
}

// NewLogger returns a text logger on the command's error stream.
func NewLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Patterns returns the package patterns to work on: the arguments, else the
// configured packages, else the current directory.
func (e *Env) Patterns(args []string) []string {
	switch {
	case len(args) > 0:
		return args
	case len(e.Config.Packages) > 0:
		return e.Config.Packages
	default:
		return []string{"."}
	}
}

// Load analyzes the packages matched by patterns. Previously generated files
// are ignored.
func (e *Env) Load(patterns []string) (*analyze.TypeGraph, error) {
	e.Logger.Debug("loading packages", slog.Any("patterns", patterns))

	analyzer := analyze.NewAnalyzer()
	analyzer.IgnoreFiles(e.Config.Output)

	graph, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	for _, pkg := range graph.Packages {
		if pkg.TypeErrors > 0 {
			e.Logger.Debug("skipped type errors caused by ignored files",
				slog.String("package", pkg.Path),
				slog.Int("errors", pkg.TypeErrors))
		}
	}

	e.Logger.Debug("loaded packages",
		slog.Int("packages", len(graph.Packages)),
		slog.Int("types", len(graph.Types)))

	return graph, nil
}

// Synthesize extracts every annotated type of graph and reports the
// diagnostics. The returned error is set when any type failed.
func (e *Env) Synthesize(graph *analyze.TypeGraph) (*gen.Plan, error) {
	opts := element.Options{KeyCase: e.Config.KeyStyle()}

	plan, err := gen.Synthesize(graph, opts)

	plan.Diagnostics.Sort()

	for _, w := range plan.Diagnostics.Warnings {
		e.View.Warning(w.String())
	}

	for _, info := range plan.Diagnostics.Infos {
		e.Logger.Debug(info.Message, slog.String("type", info.TypeName))
	}

	if err != nil {
		for _, d := range plan.Diagnostics.Errors {
			e.View.Error(d.String())
		}

		return plan, fmt.Errorf("%d type(s) failed extraction", len(plan.Diagnostics.Errors))
	}

	return plan, nil
}
