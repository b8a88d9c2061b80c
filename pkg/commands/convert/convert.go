package convert

import (
	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/types"
	"github.com/arthur-debert/physq/pkg/units"
)

// ConvertOptions defines the options for the Convert command.
type ConvertOptions struct {
	// System interprets every unit string. Nil means quantity.Default().
	System *quantity.System
	// Quantity is a literal such as "5 km" or "98.6 degF".
	Quantity string
	// Units are the target unit expressions. Empty means SI base units.
	Units []string
	// Precision is the number of significant digits, -1 for shortest.
	Precision int
	// Clock adds an H:MM:SS rendering to time conversions.
	Clock bool
}

// Convert parses opts.Quantity and expresses it in every target unit.
func Convert(opts ConvertOptions) (*types.ConvertResult, error) {
	log := logging.GetLogger("commands.convert")
	log.Debug().Str("quantity", opts.Quantity).Strs("units", opts.Units).Msg("Executing command")

	s := opts.System
	if s == nil {
		s = quantity.Default()
	}

	q, err := s.Parse(opts.Quantity)
	if err != nil {
		return nil, err
	}

	targets := opts.Units
	if len(targets) == 0 {
		targets = []string{units.BaseExpression(q.Dimension())}
	}

	base := quantity.Wrap(s, q.Raw(), q.Dimension()).Format(opts.Precision)

	result := &types.ConvertResult{Conversions: make([]types.Conversion, 0, len(targets))}
	for _, target := range targets {
		converted, err := q.Convert(target)
		if err != nil {
			return nil, err
		}
		value, err := q.In(target)
		if err != nil {
			return nil, err
		}

		c := types.Conversion{
			Input:         opts.Quantity,
			Value:         value.Float64(),
			Unit:          target,
			Formatted:     converted.Format(opts.Precision),
			Dimension:     q.Dimension().String(),
			DimensionName: q.Dimension().Name(),
			Base:          base,
		}
		if opts.Clock {
			if q.Dimension() != dimension.Time.Dimension() {
				return nil, errors.DimensionMismatch("clock", dimension.Time.Dimension().String(), q.Dimension().String())
			}
			c.Clock, err = quantity.FormatClock(q)
			if err != nil {
				return nil, err
			}
		}
		result.Conversions = append(result.Conversions, c)
	}

	log.Info().Int("conversions", len(result.Conversions)).Msg("Command finished")
	return result, nil
}
