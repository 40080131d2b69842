// Package inspect provides the inspect command.
package inspect

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"tesseract/internal/cmd/cmdutil"
	"tesseract/internal/element"
)

// dumper prints definitions without pointer addresses so output is stable.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// NewCmdInspect creates the inspect command.
func NewCmdInspect() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [packages...]",
		Short: "Dump the element definitions extracted from annotated types",
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

			for _, def := range plan.Definitions {
				env.View.KeyValue(element.QualifiedName(def.Type), "<"+def.Tag+">")
				env.View.Text(Dump(def))
			}

			return nil
		},
	}
}

// Dump formats a definition for reading.
func Dump(def *element.Definition) string {
	return dumper.Sdump(def)
}
