package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangetype/internal/calc"
)

func newRerangeCmd() *cobra.Command {
	rerangeCmd := &cobra.Command{
		Use:   "rerange [flags] -- <value>",
		Short: calc.RerangeShortDesc,
		Long:  calc.RerangeLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE:  calc.RunRerange,
	}
	calc.AddRangeFlags(rerangeCmd)
	calc.AddExportFlags(rerangeCmd)
	rerangeCmd.Flags().String("to", "", "Range the value is moved into")
	rerangeCmd.MarkFlagRequired("to")
	return rerangeCmd
}
