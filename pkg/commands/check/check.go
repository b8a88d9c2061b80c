package check

import (
	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/types"
)

// CheckOptions defines the options for the Check command. Each side is a
// quantity literal ("5 km") or a bare unit expression ("mi/hr").
type CheckOptions struct {
	System *quantity.System
	Left   string
	Right  string
}

type side struct {
	dim  dimension.Dimension
	base float64
}

// Check reports whether both sides share a dimension. When they do, Ratio
// is left divided by right, both taken in base units; a bare unit counts
// as one of itself.
func Check(opts CheckOptions) (*types.CheckResult, error) {
	log := logging.GetLogger("commands.check")
	log.Debug().Str("left", opts.Left).Str("right", opts.Right).Msg("Executing command")

	s := opts.System
	if s == nil {
		s = quantity.Default()
	}

	left, err := parseSide(s, opts.Left)
	if err != nil {
		return nil, err
	}
	right, err := parseSide(s, opts.Right)
	if err != nil {
		return nil, err
	}

	result := &types.CheckResult{
		Left:           opts.Left,
		Right:          opts.Right,
		LeftDimension:  left.dim.String(),
		RightDimension: right.dim.String(),
		Compatible:     left.dim == right.dim,
	}
	if result.Compatible && right.base != 0 {
		ratio := left.base / right.base
		result.Ratio = &ratio
	}

	log.Info().Bool("compatible", result.Compatible).Msg("Command finished")
	return result, nil
}

func parseSide(s *quantity.System, text string) (side, error) {
	q, err := s.Parse(text)
	if err == nil {
		return side{dim: q.Dimension(), base: q.Raw().Float64()}, nil
	}
	if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
		return side{}, err
	}

	expr, err := s.Parser().Parse(text)
	if err != nil {
		return side{}, err
	}
	return side{dim: expr.Dimension, base: expr.Scale}, nil
}
