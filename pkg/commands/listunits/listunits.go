package listunits

import (
	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/types"
	"github.com/arthur-debert/physq/pkg/units"
)

// ListUnitsOptions defines the options for the ListUnits command.
type ListUnitsOptions struct {
	System *quantity.System
	// Dimension restricts the listing. It may be a dimension name
	// ("speed"), a formula ("L T^-1") or a unit expression ("mi/hr").
	Dimension string
	// Prefixes includes the SI prefix table.
	Prefixes bool
}

// ListUnits returns the registry entries, sorted by symbol.
func ListUnits(opts ListUnitsOptions) (*types.UnitsResult, error) {
	log := logging.GetLogger("commands.listunits")
	log.Debug().Str("dimension", opts.Dimension).Msg("Executing command")

	s := opts.System
	if s == nil {
		s = quantity.Default()
	}
	reg := s.Registry()

	result := &types.UnitsResult{}
	list := reg.Units()
	if opts.Dimension != "" {
		dim, err := resolveDimension(s, opts.Dimension)
		if err != nil {
			return nil, err
		}
		result.Dimension = dim.String()
		list = reg.UnitsFor(dim)
	}

	result.Units = make([]types.UnitInfo, len(list))
	for i, u := range list {
		result.Units[i] = unitInfo(u)
	}

	if opts.Prefixes {
		for _, p := range reg.Prefixes() {
			result.Prefixes = append(result.Prefixes, types.PrefixInfo{Symbol: p.Symbol, Name: p.Name, Factor: p.Factor})
		}
	}

	log.Info().Int("units", len(result.Units)).Msg("Command finished")
	return result, nil
}

func resolveDimension(s *quantity.System, text string) (dimension.Dimension, error) {
	if dim, ok := dimension.ByName(text); ok {
		return dim, nil
	}
	if dim, err := dimension.Parse(text); err == nil {
		return dim, nil
	}
	expr, err := s.Parser().Parse(text)
	if err != nil {
		return dimension.Dimension{}, err
	}
	return expr.Dimension, nil
}

func unitInfo(u units.Unit) types.UnitInfo {
	return types.UnitInfo{
		Symbol:        u.Symbol,
		Name:          u.Name,
		Aliases:       u.Aliases,
		Dimension:     u.Dimension.String(),
		DimensionName: u.Dimension.Name(),
		Scale:         u.Scale,
		Offset:        u.Offset,
		Prefixable:    u.Prefixable,
	}
}
