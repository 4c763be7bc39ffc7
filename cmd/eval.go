package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangetype/internal/calc"
)

func newEvalCmd() *cobra.Command {
	evalCmd := &cobra.Command{
		Use:     "eval [flags] -- <value> [<op> <value> | neg]...",
		Short:   calc.EvalShortDesc,
		Long:    calc.EvalLongDesc,
		Example: calc.EvalExample,
		Args:    cobra.MinimumNArgs(1),
		RunE:    calc.RunEval,
	}
	calc.AddRangeFlags(evalCmd)
	calc.AddExportFlags(evalCmd)
	return evalCmd
}
