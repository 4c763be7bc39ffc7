package calc

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/rangetype/internal/log"
)

const EvalShortDesc = "Evaluate arithmetic on range-checked numbers"

const EvalLongDesc = `Eval builds every operand inside one inclusive range and folds the expression
from left to right. Operators are + - * / (or add sub mul div); the token "neg"
negates the running result against the same range. The command fails as soon as
an operand or an intermediate result leaves the range; results are never clamped.`

const EvalExample = `  rangetype eval --range [0,100] -- 30 + 50 - 20
  rangetype eval --range -1..1 --type float64 -- 0.5 neg
  rangetype eval --preset percent --var LEVEL --export -- 10 x 5`

const CheckShortDesc = "Check that values lie inside a range"

const CheckLongDesc = `Check parses every value with the selected number type and verifies it lies
inside the inclusive range. Accepted values are printed in their canonical form;
the first rejected value fails the command.`

const RerangeShortDesc = "Move a value from one range into another"

const RerangeLongDesc = `Rerange builds the value inside --range and re-validates it against --to.`

// AddRangeFlags registers the flags shared by every subcommand.
func AddRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("range", "r", "", "Inclusive range, [lower,upper] or lower..upper")
	cmd.Flags().StringP("preset", "p", "", "Name of a range preset from the config file")
	cmd.Flags().StringP("type", "t", NumTypeInt.String(), describeTypes())
	cmd.MarkFlagsMutuallyExclusive("range", "preset")
	cmd.MarkFlagsOneRequired("range", "preset")

	cmd.RegisterFlagCompletionFunc("type", completeFrom(NumTypeStrings()))
	cmd.RegisterFlagCompletionFunc("preset", func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		configFlag, _ := cmd.Flags().GetString("config")
		presets, err := LoadPresets(configPath(configFlag))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return completeFrom(presets.Names())(cmd, args, toComplete)
	})
}

// AddExportFlags registers the flags that turn the result into a shell
// assignment.
func AddExportFlags(cmd *cobra.Command) {
	cmd.Flags().String("var", "", "Print the result as an assignment to this variable")
	cmd.Flags().BoolP("export", "e", false, "Make the assignment persistent (export / setx)")
	cmd.Flags().String("shell", ShellTypeAuto.String(),
		fmt.Sprintf("Shell syntax of the assignment, one of %v", ShellTypeStrings()))
	cmd.RegisterFlagCompletionFunc("shell", completeFrom(ShellTypeStrings()))
}

// AddFormatFlags registers the input and output format flags of check.
func AddFormatFlags(cmd *cobra.Command) {
	formats := strings.Join(AllowedMultiFormats, ", ")
	cmd.Flags().StringSlice("input-format", []string{}, fmt.Sprintf("How arguments are split into values, any of %s", formats))
	cmd.Flags().StringSliceP("format", "f", []string{"newline"}, fmt.Sprintf("How accepted values are joined, one of %s", formats))
}

func completeFrom(choices []string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		var completions []cobra.Completion
		for _, choice := range choices {
			if strings.HasPrefix(choice, toComplete) {
				completions = append(completions, choice)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

// collectSpec reads the flags registered on cmd into a CmdSpec. Flags a
// subcommand does not register are left at their zero value.
func collectSpec(cmd *cobra.Command) (*CmdSpec, error) {
	flags := cmd.Flags()
	spec := &CmdSpec{}
	var err error

	if spec.Range, err = flags.GetString("range"); err != nil {
		return nil, err
	}
	if spec.Preset, err = flags.GetString("preset"); err != nil {
		return nil, err
	}
	if spec.ConfigPath, err = optionalString(flags, "config"); err != nil {
		return nil, err
	}
	typeName, err := flags.GetString("type")
	if err != nil {
		return nil, err
	}
	if spec.Type, err = NumTypeString(typeName); err != nil {
		return nil, fmt.Errorf("invalid --type %q, allowed types are: %v", typeName, NumTypeStrings())
	}

	if flags.Lookup("var") != nil {
		if spec.Export.VarName, err = flags.GetString("var"); err != nil {
			return nil, err
		}
		if spec.Export.Export, err = flags.GetBool("export"); err != nil {
			return nil, err
		}
		shellName, err := flags.GetString("shell")
		if err != nil {
			return nil, err
		}
		if spec.Export.ShellType, err = ShellTypeString(shellName); err != nil {
			return nil, fmt.Errorf("invalid --shell %q, allowed shells are: %v", shellName, ShellTypeStrings())
		}
		if spec.Export.Export && spec.Export.VarName == "" {
			return nil, fmt.Errorf("--export requires --var")
		}
	}

	if flags.Lookup("format") != nil {
		if spec.InputFormat, err = flags.GetStringSlice("input-format"); err != nil {
			return nil, err
		}
		if spec.OutputFormat, err = flags.GetStringSlice("format"); err != nil {
			return nil, err
		}
		if err = checkMultiFormat(spec.InputFormat, "input-format"); err != nil {
			return nil, err
		}
		if err = checkMultiFormat(spec.OutputFormat, "format"); err != nil {
			return nil, err
		}
	}

	if spec.Target, err = optionalString(flags, "to"); err != nil {
		return nil, err
	}
	return spec, nil
}

// optionalString reads a string flag that only some subcommands register.
func optionalString(flags *pflag.FlagSet, name string) (string, error) {
	if flags.Lookup(name) == nil {
		return "", nil
	}
	return flags.GetString(name)
}

func prepare(cmd *cobra.Command) (*CmdSpec, string, calculator, error) {
	spec, err := collectSpec(cmd)
	if err != nil {
		return nil, "", nil, err
	}
	bounds, err := resolveRange(spec)
	if err != nil {
		return nil, "", nil, errors.Trace(err)
	}
	c, err := newCalculator(spec.Type)
	if err != nil {
		return nil, "", nil, err
	}
	log.Debug().Str("cmd", cmd.Name()).Str("range", bounds).Stringer("type", spec.Type).Msg("prepared")
	return spec, bounds, c, nil
}

// RunEval is the logic of the eval command.
func RunEval(cmd *cobra.Command, args []string) error {
	spec, bounds, c, err := prepare(cmd)
	if err != nil {
		return err
	}
	out, err := c.Eval(bounds, args)
	if err != nil {
		return err
	}
	return emit(cmd, spec.Export, out)
}

// RunCheck is the logic of the check command.
func RunCheck(cmd *cobra.Command, args []string) error {
	spec, bounds, c, err := prepare(cmd)
	if err != nil {
		return err
	}
	values, err := ParseMultiValues(spec.InputFormat, args, "input-format")
	if err != nil {
		return err
	}
	accepted, err := c.Check(bounds, values)
	if err != nil {
		return err
	}
	out, err := OutputMultiValues(spec.OutputFormat, accepted)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// RunRerange is the logic of the rerange command.
func RunRerange(cmd *cobra.Command, args []string) error {
	spec, bounds, c, err := prepare(cmd)
	if err != nil {
		return err
	}
	out, err := c.Rerange(bounds, spec.Target, args[0])
	if err != nil {
		return err
	}
	return emit(cmd, spec.Export, out)
}

func emit(cmd *cobra.Command, export ExportSpec, out string) error {
	if export.VarName == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	shellType, err := decideShellType(export.ShellType)
	if err != nil {
		return err
	}
	line, err := exportEnvVar(shellType, export.VarName, out, export.Export)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
