package dim

import (
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/types"
	"github.com/arthur-debert/physq/pkg/units"
)

// DimOptions defines the options for the Dim command.
type DimOptions struct {
	System     *quantity.System
	Expression string
}

// Dim parses a unit expression and reports its dimension, scale and offset,
// its canonical base-unit form, and the registered units sharing its dimension.
func Dim(opts DimOptions) (*types.DimResult, error) {
	log := logging.GetLogger("commands.dim")
	log.Debug().Str("expression", opts.Expression).Msg("Executing command")

	s := opts.System
	if s == nil {
		s = quantity.Default()
	}

	expr, err := s.Parser().Parse(opts.Expression)
	if err != nil {
		return nil, err
	}

	result := &types.DimResult{
		Expression:    expr.String(),
		Dimension:     expr.Dimension.String(),
		DimensionName: expr.Dimension.Name(),
		Scale:         expr.Scale,
		Offset:        expr.Offset,
		Affine:        expr.IsAffine(),
		Base:          units.BaseExpression(expr.Dimension),
	}
	for _, u := range s.Registry().UnitsFor(expr.Dimension) {
		result.Units = append(result.Units, u.Symbol)
	}

	log.Info().Str("dimension", result.Dimension).Int("compatible", len(result.Units)).Msg("Command finished")
	return result, nil
}
