package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/unitdefs"
	"github.com/arthur-debert/physq/pkg/unitexpr"
	"github.com/arthur-debert/physq/pkg/units"
)

// BuildRegistry returns a fresh registry holding the built-in units, then
// the units of every file in unit_files, then the inline [[units]]. The
// registry is frozen afterwards when registry.freeze is set.
func (c *Config) BuildRegistry(fs afero.Fs) (*units.Registry, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	reg := units.NewDefaultRegistry()
	if err := unitdefs.LoadInto(fs, reg, c.UnitFiles...); err != nil {
		return nil, err
	}
	if err := unitdefs.Apply(reg, c.Units); err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), "failed to apply inline units")
	}
	if c.Registry.Freeze {
		reg.Freeze()
	}

	log.Debug().
		Int("units", len(reg.Units())).
		Bool("frozen", reg.Frozen()).
		Msg("Unit registry built")
	return reg, nil
}

// System builds the registry and wraps it in a quantity.System whose parser
// honors registry.cache.
func (c *Config) System(fs afero.Fs) (*quantity.System, error) {
	reg, err := c.BuildRegistry(fs)
	if err != nil {
		return nil, err
	}
	return quantity.NewSystemForRegistry(reg, unitexpr.WithCache(c.Registry.Cache)), nil
}
