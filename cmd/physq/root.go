package physq

import (
	"embed"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/physq/internal/version"
	"github.com/arthur-debert/physq/pkg/cobrax/topics"
	"github.com/arthur-debert/physq/pkg/config"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/output"
	"github.com/arthur-debert/physq/pkg/quantity"
)

//go:embed topics
var topicsFS embed.FS

// Commands annotated this way still run when the configuration cannot be
// loaded, using the built-in defaults instead.
const (
	annotationConfig = "physq/config"
	configOptional   = "optional"
)

// RootOptions tune NewRootCmdWithOptions.
type RootOptions struct {
	// Fs holds the configuration and unit definition files. Defaults to
	// the OS filesystem.
	Fs afero.Fs
}

// app is the state shared by every subcommand of one root command.
type app struct {
	fs afero.Fs

	verbosity  int
	configPath string
	format     string
	noColor    bool
	unitFiles  []string

	cfg    *config.Config
	system *quantity.System
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(RootOptions{})
}

// NewRootCmdWithOptions is NewRootCmd reading files from opts.Fs.
func NewRootCmdWithOptions(opts RootOptions) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: opts.Fs}
	if a.fs == nil {
		a.fs = afero.NewOsFs()
	}

	rootCmd := &cobra.Command{
		Use:     "physq",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.configPath, "config", "c", "", MsgFlagConfig)
	flags.StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat)
	flags.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	flags.StringArrayVar(&a.unitFiles, "units-file", nil, MsgFlagUnitsFile)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newDimCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newUnitsCmd(a))
	rootCmd.AddCommand(newPaceCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topics are compiled into the binary
	renderer := topics.NewGlamourRenderer()
	renderer.Plain = func() bool {
		return a.cfg != nil && a.cfg.Display.NoColor
	}
	topicOpts := topics.Options{
		Fs:         afero.FromIOFS{FS: topicsFS},
		Extensions: []string{".md", ".txt"},
		Renderer:   renderer,
	}
	if err := topics.InitializeWithOptions(rootCmd, "topics", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	if helpCmd, _, err := rootCmd.Find([]string{"help"}); err == nil && helpCmd != rootCmd {
		optionalConfig(helpCmd)
		helpCmd.GroupID = "misc"
	}

	return rootCmd
}

func optionalConfig(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationConfig] = configOptional
	return cmd
}

// setup loads the configuration and configures logging from it. Flags
// override the file and environment.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		overrides["display.format"] = a.format
	}
	if flags.Changed("no-color") {
		overrides["display.no_color"] = a.noColor
	}

	cfg, err := config.Load(config.Options{
		Fs:        a.fs,
		Path:      a.configPath,
		Overrides: overrides,
	})
	if err != nil {
		if cmd.Annotations[annotationConfig] != configOptional {
			logging.SetupLoggerWithOptions(logging.Options{Verbosity: a.verbosity, DisableFile: true})
			return err
		}
		cfg = config.Default()
	}
	cfg.UnitFiles = append(cfg.UnitFiles, a.unitFiles...)
	a.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity:   cfg.Logging.Verbosity + a.verbosity,
		NoColor:     cfg.Display.NoColor,
		LogFile:     cfg.Logging.File,
		DisableFile: cfg.Logging.DisableFile,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring unusable configuration")
	}
	return nil
}

// quantities builds the unit system once per root command.
func (a *app) quantities() (*quantity.System, error) {
	if a.system != nil {
		return a.system, nil
	}
	s, err := a.cfg.System(a.fs)
	if err != nil {
		return nil, err
	}
	a.system = s
	return s, nil
}

func (a *app) outputFormat() output.Format {
	f, err := output.ParseFormat(a.cfg.Display.Format)
	if err != nil {
		f = output.FormatAuto
	}
	if a.cfg.Display.NoColor && (f == output.FormatAuto || f == output.FormatTerminal) {
		f = output.FormatText
	}
	return f
}

func (a *app) machineReadable() bool {
	f := a.outputFormat()
	return f == output.FormatJSON || f == output.FormatYAML
}

// render prints result, or err when it is non-nil. Errors are only
// rendered to stdout for the machine readable formats; main reports
// them on stderr.
func (a *app) render(cmd *cobra.Command, result interface{}, err error) error {
	r, rerr := output.NewRenderer(a.outputFormat(), cmd.OutOrStdout())
	if rerr != nil {
		return rerr
	}
	if err != nil {
		if a.machineReadable() {
			_ = r.RenderError(err)
		}
		return err
	}
	return r.RenderResult(result)
}
