package cmd

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangetype/internal/calc"
	"github.com/vipcxj/rangetype/internal/log"
)

// NewRootCmd builds a fresh command tree. Execute calls it on every run so
// flag values never leak from one in-process invocation to the next.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rangetype",
		Short: "Arithmetic on numbers that must stay inside an inclusive range",
		Long: `rangetype evaluates arithmetic on range-checked numbers.

Every value carries the inclusive range it must stay within. Operands must share
the same range, and every result is checked against it; nothing is clamped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			return log.Init(log.ResolveLevel(level), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().String("log-level", "",
		fmt.Sprintf("Log level, one of %v (default warn, env %s)", log.Levels(), log.LevelEnv))
	rootCmd.PersistentFlags().StringP("config", "c", "",
		fmt.Sprintf("YAML file with range presets (env %s)", calc.ConfigEnv))

	rootCmd.AddCommand(newEvalCmd(), newCheckCmd(), newRerangeCmd())
	return rootCmd
}

// Execute runs the command line in os.Args and returns the process exit code.
func Execute() int {
	log.Reset()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Debug().Msg(errors.ErrorStack(err))
		rootCmd.PrintErrln(fmt.Sprintf("%s %v", rootCmd.ErrPrefix(), err))
		return 1
	}
	return 0
}
