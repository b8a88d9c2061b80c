package pacetable

import (
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/pace"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/types"
)

// PaceTableOptions defines the options for the PaceTable command.
type PaceTableOptions struct {
	System    *quantity.System
	SpeedUnit string
	From      float64
	To        float64
	Step      float64
	// Distances are length literals; empty means pace.DefaultDistances.
	Distances []string
}

// PaceTable tabulates finishing times for every speed in From..To over
// every distance.
func PaceTable(opts PaceTableOptions) (*types.PaceResult, error) {
	log := logging.GetLogger("commands.pacetable")
	log.Debug().
		Str("speedUnit", opts.SpeedUnit).
		Float64("from", opts.From).
		Float64("to", opts.To).
		Float64("step", opts.Step).
		Msg("Executing command")

	s := opts.System
	if s == nil {
		s = quantity.Default()
	}
	literals := opts.Distances
	if len(literals) == 0 {
		literals = pace.DefaultDistances
	}

	distances, err := pace.Distances(s, literals)
	if err != nil {
		return nil, err
	}
	speeds, err := pace.SpeedRange(s, opts.From, opts.To, opts.Step, opts.SpeedUnit)
	if err != nil {
		return nil, err
	}
	table, err := pace.NewTable(speeds, distances)
	if err != nil {
		return nil, err
	}

	result := &types.PaceResult{
		SpeedUnit: opts.SpeedUnit,
		Distances: literals,
		Rows:      make([]types.PaceRow, len(table.Rows)),
	}
	for i, row := range table.Rows {
		speed, err := row.Speed.In(opts.SpeedUnit)
		if err != nil {
			return nil, err
		}
		result.Rows[i] = types.PaceRow{Speed: speed.Float64(), Times: row.Clocks()}
	}

	log.Info().Int("rows", len(result.Rows)).Int("columns", len(literals)).Msg("Command finished")
	return result, nil
}
