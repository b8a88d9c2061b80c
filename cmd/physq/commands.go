package physq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/physq/internal/version"
	"github.com/arthur-debert/physq/pkg/commands"
	"github.com/arthur-debert/physq/pkg/config"
	"github.com/arthur-debert/physq/pkg/errors"
)

// quantityArgs rejoins "5 km" when the shell split it into "5" and "km".
func quantityArgs(args []string) (string, []string) {
	if len(args) >= 2 {
		if _, err := strconv.ParseFloat(args[0], 64); err == nil {
			return args[0] + " " + args[1], args[2:]
		}
	}
	return args[0], args[1:]
}

func newConvertCmd(a *app) *cobra.Command {
	var (
		precision int
		clock     bool
	)

	cmd := &cobra.Command{
		Use:     "convert <quantity> [unit...]",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.quantities()
			if err != nil {
				return a.render(cmd, nil, err)
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Display.Precision
			}

			literal, targets := quantityArgs(args)
			result, err := commands.Convert(commands.ConvertOptions{
				System:    s,
				Quantity:  literal,
				Units:     targets,
				Precision: precision,
				Clock:     clock,
			})
			return a.render(cmd, result, err)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", -1, MsgFlagPrecision)
	cmd.Flags().BoolVar(&clock, "clock", false, MsgFlagClock)

	return cmd
}

func newDimCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dim <unit-expression>",
		Short:   MsgDimShort,
		Long:    MsgDimLong,
		Example: MsgDimExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.quantities()
			if err != nil {
				return a.render(cmd, nil, err)
			}
			result, err := commands.Dim(commands.DimOptions{
				System:     s,
				Expression: strings.Join(args, " "),
			})
			return a.render(cmd, result, err)
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "check <left> <right>",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.quantities()
			if err != nil {
				return a.render(cmd, nil, err)
			}
			result, err := commands.Check(commands.CheckOptions{
				System: s,
				Left:   args[0],
				Right:  args[1],
			})
			if err := a.render(cmd, result, err); err != nil {
				return err
			}
			if strict && !result.Compatible {
				return errors.DimensionMismatch("check", result.LeftDimension, result.RightDimension)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}

func newUnitsCmd(a *app) *cobra.Command {
	var (
		dim      string
		prefixes bool
	)

	cmd := &cobra.Command{
		Use:     "units",
		Short:   MsgUnitsShort,
		Long:    MsgUnitsLong,
		Example: MsgUnitsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.quantities()
			if err != nil {
				return a.render(cmd, nil, err)
			}
			result, err := commands.ListUnits(commands.ListUnitsOptions{
				System:    s,
				Dimension: dim,
				Prefixes:  prefixes,
			})
			return a.render(cmd, result, err)
		},
	}

	cmd.Flags().StringVarP(&dim, "dimension", "d", "", MsgFlagDimension)
	cmd.Flags().BoolVar(&prefixes, "prefixes", false, MsgFlagPrefixes)

	return cmd
}

func newPaceCmd(a *app) *cobra.Command {
	var (
		unit           string
		from, to, step float64
	)

	cmd := &cobra.Command{
		Use:     "pace [distance...]",
		Short:   MsgPaceShort,
		Long:    MsgPaceLong,
		Example: MsgPaceExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.quantities()
			if err != nil {
				return a.render(cmd, nil, err)
			}

			defaults := a.cfg.Pace
			flags := cmd.Flags()
			if !flags.Changed("unit") {
				unit = defaults.SpeedUnit
			}
			if !flags.Changed("from") {
				from = defaults.From
			}
			if !flags.Changed("to") {
				to = defaults.To
			}
			if !flags.Changed("step") {
				step = defaults.Step
			}
			distances := args
			if len(distances) == 0 {
				distances = defaults.Distances
			}

			result, err := commands.PaceTable(commands.PaceTableOptions{
				System:    s,
				SpeedUnit: unit,
				From:      from,
				To:        to,
				Step:      step,
				Distances: distances,
			})
			return a.render(cmd, result, err)
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "mph", MsgFlagPaceUnit)
	cmd.Flags().Float64Var(&from, "from", 5, MsgFlagPaceFrom)
	cmd.Flags().Float64Var(&to, "to", 10.6, MsgFlagPaceTo)
	cmd.Flags().Float64Var(&step, "step", 0.2, MsgFlagPaceStep)

	return cmd
}

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		write bool
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{
				Fs:    a.fs,
				Write: write,
				Path:  path,
				Force: force,
			})
			return a.render(cmd, result, err)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVar(&path, "path", "", MsgFlagPath)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return optionalConfig(cmd)
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.machineReadable() {
				return a.render(cmd, a.cfg, nil)
			}
			content, err := config.Encode(a.cfg)
			if err != nil {
				return err
			}
			if a.cfg.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", a.cfg.Path)
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return optionalConfig(&cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	})
}

func newTopicsCmd() *cobra.Command {
	return optionalConfig(&cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd != cmd.Root() {
				helpCmd.SetOut(cmd.OutOrStdout())
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	})
}

func newCompletionCmd() *cobra.Command {
	return optionalConfig(&cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	})
}
