// Package classify provides the classify command.
package classify

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tesseract/casing"
	"tesseract/internal/view"
)

type classifyOptions struct {
	to string
}

// NewCmdClassify creates the classify command.
func NewCmdClassify() *cobra.Command {
	opts := &classifyOptions{}

	cmd := &cobra.Command{
		Use:   "classify <identifier>...",
		Short: "Show the casing style and words of identifiers",
		Example: `  tesseract-gen classify ExampleValue
  tesseract-gen classify EXAMPLE_VALUE --to pascal`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClassify(view.NewRenderer(cmd.OutOrStdout(), noColor), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "convert to this style (pascal, snake, title_snake, screaming_snake, lower)")

	return cmd
}

func runClassify(r *view.Renderer, idents []string, opts *classifyOptions) error {
	var target casing.Style

	if opts.to != "" {
		s, err := casing.ParseStyle(opts.to)
		if err != nil {
			return err
		}

		target = s
	}

	failed := 0

	for _, ident := range idents {
		style, err := casing.Classify(ident)
		if err != nil {
			r.Error(err.Error())
			failed++

			continue
		}

		words, err := casing.Tokenize(ident, style)
		if err != nil {
			r.Error(err.Error())
			failed++

			continue
		}

		line := fmt.Sprintf("%s [%s]", style.ConfigName(), strings.Join(casing.Texts(words), " "))
		if target.IsValid() {
			line += " -> " + casing.Convert(words, target)
		}

		r.KeyValue(ident, line)
	}

	if failed > 0 {
		return fmt.Errorf("%d identifier(s) could not be classified", failed)
	}

	return nil
}
