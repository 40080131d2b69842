// Package check provides the check command.
package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"tesseract/internal/cmd/cmdutil"
)

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages...]",
		Short: "Validate html annotations without generating",
		Long: `Analyze the given packages and extract every annotated type, reporting
all errors and warnings. Exits non-zero when any type is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cmdutil.Setup(cmd)
			if err != nil {
				return err
			}

			graph, err := env.Load(env.Patterns(args))
			if err != nil {
				return err
			}

			plan, err := env.Synthesize(graph)
			if err != nil {
				return err
			}

			env.View.Success(fmt.Sprintf("%d element type(s) OK", len(plan.Definitions)))

			return nil
		},
	}
}
