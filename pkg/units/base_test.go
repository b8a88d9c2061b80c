package units

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/physq/pkg/dimension"
)

func TestBaseExpression(t *testing.T) {
	tests := []struct {
		name string
		dim  dimension.Dimension
		want string
	}{
		{"dimensionless", dimension.Dimensionless, "1"},
		{"length", dimension.Length.Dimension(), "m"},
		{"speed", dimension.Speed, "m/s"},
		{"acceleration", dimension.Acceleration, "m/s^2"},
		{"energy", dimension.Energy, "kg*m^2/s^2"},
		{"voltage", dimension.Voltage, "kg*m^2/s^3/A"},
		{"frequency", dimension.Frequency, "1/s"},
		{"root length", dimension.Of(dimension.Length.PowFrac(1, 2)), "m^(1/2)"},
		{"inverse root", dimension.Of(dimension.Time.PowFrac(-1, 2)), "1/s^(1/2)"},
		{"temperature", dimension.Temperature.Dimension(), "K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseExpression(tt.dim))
		})
	}
}

func TestBaseSymbolsResolveToScaleOne(t *testing.T) {
	reg := NewDefaultRegistry()
	for _, b := range dimension.Bases() {
		m, err := reg.Lookup(BaseSymbol(b))
		if assert.NoError(t, err, b.String()) {
			assert.Equal(t, 1.0, m.Scale, b.String())
			assert.Equal(t, b.Dimension(), m.Unit.Dimension)
		}
	}
}
