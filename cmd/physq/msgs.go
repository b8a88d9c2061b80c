package physq

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Dimension-checked unit conversion"
	MsgConvertShort    = "Convert a quantity to other units"
	MsgDimShort        = "Show the dimension and scale of a unit expression"
	MsgCheckShort      = "Check that two quantities share a dimension"
	MsgUnitsShort      = "List the known units"
	MsgPaceShort       = "Print a race pace table"
	MsgGenConfigShort  = "Generate the starter configuration file"
	MsgConfigShort     = "Show the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat = "physq %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file (default $XDG_CONFIG_HOME/physq/config.toml)"
	MsgFlagFormat    = "Output format: auto, term, text, json or yaml"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagUnitsFile = "Load extra unit definitions from a TOML or YAML file (repeatable)"
	MsgFlagPrecision = "Significant digits, -1 for the shortest exact form"
	MsgFlagClock     = "Also print time values as H:MM:SS"
	MsgFlagStrict    = "Exit with an error when the dimensions differ"
	MsgFlagDimension = "Only list units of this dimension (name, formula or unit expression)"
	MsgFlagPrefixes  = "Also list the SI prefixes"
	MsgFlagPaceUnit  = "Speed unit of the table"
	MsgFlagPaceFrom  = "Slowest speed"
	MsgFlagPaceTo    = "Fastest speed"
	MsgFlagPaceStep  = "Speed increment"
	MsgFlagWrite     = "Write the file instead of printing it"
	MsgFlagPath      = "Where -w writes (default $XDG_CONFIG_HOME/physq/config.toml)"
	MsgFlagForce     = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/dim-long.txt
	msgDimLongRaw string
	MsgDimLong    = strings.TrimSpace(msgDimLongRaw)

	//go:embed msgs/dim-example.txt
	msgDimExampleRaw string
	MsgDimExample    = strings.TrimRight(msgDimExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/units-long.txt
	msgUnitsLongRaw string
	MsgUnitsLong    = strings.TrimSpace(msgUnitsLongRaw)

	//go:embed msgs/units-example.txt
	msgUnitsExampleRaw string
	MsgUnitsExample    = strings.TrimRight(msgUnitsExampleRaw, "\n")

	//go:embed msgs/pace-long.txt
	msgPaceLongRaw string
	MsgPaceLong    = strings.TrimSpace(msgPaceLongRaw)

	//go:embed msgs/pace-example.txt
	msgPaceExampleRaw string
	MsgPaceExample    = strings.TrimRight(msgPaceExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
