package config

import (
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/unitdefs"
)

// Config is the fully merged physq configuration.
type Config struct {
	Logging   Logging               `koanf:"logging" toml:"logging" json:"logging"`
	Display   Display               `koanf:"display" toml:"display" json:"display"`
	Registry  Registry              `koanf:"registry" toml:"registry" json:"registry"`
	Pace      Pace                  `koanf:"pace" toml:"pace" json:"pace"`
	UnitFiles []string              `koanf:"unit_files" toml:"unit_files" json:"unitFiles"`
	Units     []unitdefs.Definition `koanf:"units" toml:"units,omitempty" json:"units,omitempty"`

	// Path is the config file that was read, empty when none was.
	Path string `koanf:"-" toml:"-" json:"path,omitempty"`
}

// Logging maps onto logging.Options.
type Logging struct {
	Verbosity   int    `koanf:"verbosity" toml:"verbosity" json:"verbosity"`
	File        string `koanf:"file" toml:"file" json:"file"`
	DisableFile bool   `koanf:"disable_file" toml:"disable_file" json:"disableFile"`
}

// Display controls how results are printed.
type Display struct {
	Format    string `koanf:"format" toml:"format" json:"format"`
	Precision int    `koanf:"precision" toml:"precision" json:"precision"`
	NoColor   bool   `koanf:"no_color" toml:"no_color" json:"noColor"`
}

// Registry controls the unit registry built from the configuration.
type Registry struct {
	Cache  bool `koanf:"cache" toml:"cache" json:"cache"`
	Freeze bool `koanf:"freeze" toml:"freeze" json:"freeze"`
}

// Pace holds the defaults of the pace table.
type Pace struct {
	SpeedUnit string   `koanf:"speed_unit" toml:"speed_unit" json:"speedUnit"`
	From      float64  `koanf:"from" toml:"from" json:"from"`
	To        float64  `koanf:"to" toml:"to" json:"to"`
	Step      float64  `koanf:"step" toml:"step" json:"step"`
	Distances []string `koanf:"distances" toml:"distances" json:"distances"`
}

// Formats accepted by display.format.
var Formats = []string{"auto", "term", "text", "json", "yaml"}

// Validate reports the first invalid setting as CONFIG_INVALID.
func (c *Config) Validate() error {
	if !contains(Formats, c.Display.Format) {
		return invalid("display.format", c.Display.Format, "must be one of auto, term, text, json, yaml")
	}
	if c.Display.Precision < -1 || c.Display.Precision > 17 {
		return invalid("display.precision", c.Display.Precision, "must be between -1 and 17")
	}
	if c.Logging.Verbosity < 0 {
		return invalid("logging.verbosity", c.Logging.Verbosity, "cannot be negative")
	}
	if c.Pace.Step <= 0 {
		return invalid("pace.step", c.Pace.Step, "must be positive")
	}
	if c.Pace.From <= 0 || c.Pace.To < c.Pace.From {
		return invalid("pace.from", c.Pace.From, "must be positive and not above pace.to")
	}
	for _, def := range c.Units {
		if err := def.Validate(); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid [[units]] entry")
		}
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "%s: %v %s", key, value, reason).
		WithDetail("key", key).
		WithDetail("value", value)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
