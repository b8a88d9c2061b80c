// Package pace computes race paces: the time needed to cover a distance at
// a given speed, tabulated over a range of speeds.
package pace

import (
	"math"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/magnitude"
	"github.com/arthur-debert/physq/pkg/quantity"
)

// Quantity is the scalar quantity every pace computation works with.
type Quantity = quantity.Quantity[magnitude.Scalar]

// MaxRows bounds the number of speeds SpeedRange will produce.
const MaxRows = 1000

// DefaultDistances are the columns of the classic race pace table.
var DefaultDistances = []string{"1 mile", "5 km", "10 km", "0.5 marathon", "1 marathon"}

// Pace returns the time needed to cover distance at speed.
func Pace(speed, distance Quantity) (Quantity, error) {
	if speed.Dimension() != dimension.Speed {
		return Quantity{}, errors.DimensionMismatch("pace speed", dimension.Speed.String(), speed.Dimension().String())
	}
	if distance.Dimension() != dimension.Length.Dimension() {
		return Quantity{}, errors.DimensionMismatch("pace distance", dimension.Length.Dimension().String(), distance.Dimension().String())
	}
	if speed.Raw() <= 0 {
		return Quantity{}, errors.Newf(errors.ErrInvalidInput, "speed must be positive, got %s", speed)
	}

	t, err := distance.Div(speed)
	if err != nil {
		return Quantity{}, err
	}
	return t.Convert("s")
}

// Row is one speed and the time it takes for each table distance.
type Row struct {
	Speed Quantity
	Times []Quantity
}

// Clocks renders the row's times with quantity.FormatClock.
func (r Row) Clocks() []string {
	out := make([]string, len(r.Times))
	for i, t := range r.Times {
		// Times are always durations, so FormatClock cannot fail here.
		out[i], _ = quantity.FormatClock(t)
	}
	return out
}

// Table is a pace table: one row per speed, one column per distance.
type Table struct {
	Distances []Quantity
	Rows      []Row
}

// NewTable computes the pace of every speed over every distance.
func NewTable(speeds, distances []Quantity) (Table, error) {
	table := Table{Distances: distances, Rows: make([]Row, 0, len(speeds))}
	for _, speed := range speeds {
		row := Row{Speed: speed, Times: make([]Quantity, len(distances))}
		for i, distance := range distances {
			t, err := Pace(speed, distance)
			if err != nil {
				return Table{}, err
			}
			row.Times[i] = t
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Distances parses distance literals such as "5 km" or "0.5 marathon".
func Distances(s *quantity.System, literals []string) ([]Quantity, error) {
	out := make([]Quantity, len(literals))
	for i, literal := range literals {
		q, err := s.ParseAs(dimension.Length.Dimension(), literal)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

// SpeedRange returns speeds from..to inclusive in steps of step, expressed
// in unit. The classic table runs 5 to 10.6 mph by 0.2.
func SpeedRange(s *quantity.System, from, to, step float64, unit string) ([]Quantity, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, errors.Newf(errors.ErrInvalidInput, "step must be positive, got %g", step)
	}
	if from <= 0 || to < from {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid speed range %g..%g", from, to)
	}

	// Count steps up front so accumulated float error cannot drop the last row.
	rows := math.Floor((to-from)/step+1e-9) + 1
	if math.IsNaN(rows) || rows > MaxRows {
		return nil, errors.Newf(errors.ErrInvalidInput, "speed range %g..%g by %g has more than %d rows", from, to, step, MaxRows).
			WithDetail("max_rows", MaxRows)
	}
	n := int(rows)
	out := make([]Quantity, 0, n)
	for i := 0; i < n; i++ {
		q, err := s.Scalar(from+float64(i)*step, unit)
		if err != nil {
			return nil, err
		}
		if q.Dimension() != dimension.Speed {
			return nil, errors.DimensionMismatch("speed unit "+unit, dimension.Speed.String(), q.Dimension().String())
		}
		out = append(out, q)
	}
	return out, nil
}
