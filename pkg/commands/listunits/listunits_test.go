package listunits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/quantity"
	"github.com/arthur-debert/physq/pkg/units"
)

func TestListUnits(t *testing.T) {
	s := quantity.NewSystemForRegistry(units.NewDefaultRegistry())

	all, err := ListUnits(ListUnitsOptions{System: s})
	require.NoError(t, err)
	assert.Len(t, all.Units, len(s.Registry().Units()))
	assert.Empty(t, all.Prefixes)

	for _, dim := range []string{"temperature", "Θ", "degF"} {
		t.Run(dim, func(t *testing.T) {
			result, err := ListUnits(ListUnitsOptions{System: s, Dimension: dim})
			require.NoError(t, err)
			assert.Equal(t, "Θ", result.Dimension)

			var symbols []string
			for _, u := range result.Units {
				symbols = append(symbols, u.Symbol)
				assert.Equal(t, "temperature", u.DimensionName)
			}
			assert.Equal(t, []string{"K", "R", "degC", "degF"}, symbols)
		})
	}

	withPrefixes, err := ListUnits(ListUnitsOptions{System: s, Dimension: "speed", Prefixes: true})
	require.NoError(t, err)
	require.NotEmpty(t, withPrefixes.Prefixes)
	assert.Equal(t, "Y", withPrefixes.Prefixes[0].Symbol)

	_, err = ListUnits(ListUnitsOptions{System: s, Dimension: "wobble"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownUnit), "got %v", err)
}
