package pacetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/units"
)

func TestPaceTable(t *testing.T) {
	s := quantity.NewSystemForRegistry(units.NewDefaultRegistry())

	result, err := PaceTable(PaceTableOptions{System: s, SpeedUnit: "mph", From: 6, To: 10, Step: 4})
	require.NoError(t, err)

	assert.Equal(t, "mph", result.SpeedUnit)
	assert.Equal(t, []string{"1 mile", "5 km", "10 km", "0.5 marathon", "1 marathon"}, result.Distances)
	require.Len(t, result.Rows, 2)
	assert.InDelta(t, 6, result.Rows[0].Speed, 1e-12)
	assert.Equal(t, []string{"10:00", "31:04", "1:02:08", "2:11:05", "4:22:11"}, result.Rows[0].Times)
	assert.Equal(t, []string{"06:00", "18:38", "37:16", "1:18:39", "2:37:18"}, result.Rows[1].Times)
}

func TestPaceTableCustomDistances(t *testing.T) {
	s := quantity.NewSystemForRegistry(units.NewDefaultRegistry())

	result, err := PaceTable(PaceTableOptions{System: s, SpeedUnit: "km/hr", From: 12, To: 12, Step: 1, Distances: []string{"1 marathon"}})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"3:30:58"}, result.Rows[0].Times)

	_, err = PaceTable(PaceTableOptions{System: s, SpeedUnit: "mph", From: 5, To: 6, Step: 1, Distances: []string{"3 hr"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDimensionMismatch))

	_, err = PaceTable(PaceTableOptions{System: s, SpeedUnit: "km", From: 5, To: 6, Step: 1})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDimensionMismatch))
}
