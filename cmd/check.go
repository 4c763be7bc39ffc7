package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangetype/internal/calc"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [flags] -- <value>...",
		Short: calc.CheckShortDesc,
		Long:  calc.CheckLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE:  calc.RunCheck,
	}
	calc.AddRangeFlags(checkCmd)
	calc.AddFormatFlags(checkCmd)
	return checkCmd
}
