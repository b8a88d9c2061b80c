package dimension

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/errors"
)

var sample = []Dimension{
	Dimensionless,
	Length.Dimension(),
	Speed,
	Energy,
	Voltage,
	Of(Length.PowFrac(1, 2), Mass.Pow(-3)),
	Of(Temperature.Pow(1), Amount.Pow(-1), LuminousIntensity.Pow(2)),
}

func TestOf(t *testing.T) {
	d := Of(Length.Pow(2), Time.Pow(-1))
	assert.Equal(t, Int(2), d.Exponent(Length))
	assert.Equal(t, Int(-1), d.Exponent(Time))
	assert.True(t, d.Exponent(Mass).IsZero())

	t.Run("repeated bases accumulate", func(t *testing.T) {
		assert.Equal(t, Of(Length.Pow(3)), Of(Length.Pow(1), Length.Pow(2)))
		assert.True(t, Of(Length.Pow(1), Length.Pow(-1)).IsDimensionless())
	})
}

func TestMulDivInverse(t *testing.T) {
	for _, a := range sample {
		for _, b := range sample {
			assert.Equal(t, a, a.Mul(b).Div(b), "%s * %s / %s", a, b, b)
			assert.Equal(t, a.Mul(b), b.Mul(a))
		}
		assert.True(t, a.Div(a).IsDimensionless())
		assert.Equal(t, Dimensionless.Div(a), a.Inverse())
	}
}

func TestPowComposition(t *testing.T) {
	for _, d := range sample {
		for n := -3; n <= 3; n++ {
			for m := -3; m <= 3; m++ {
				assert.Equal(t, d.PowInt(n*m), d.PowInt(n).PowInt(m), "%s ^%d ^%d", d, n, m)
			}
		}
	}
}

func TestRoot(t *testing.T) {
	root, err := Area.Root(2)
	require.NoError(t, err)
	assert.Equal(t, Length.Dimension(), root)

	half, err := Length.Dimension().Root(2)
	require.NoError(t, err)
	assert.Equal(t, Frac(1, 2), half.Exponent(Length))
	assert.Equal(t, Length.Dimension(), half.PowInt(2))

	_, err = Area.Root(0)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		want string
	}{
		{"dimensionless", Dimensionless, "1"},
		{"base", Length.Dimension(), "L"},
		{"kinematic viscosity", Of(Length.Pow(2), Time.Pow(-1)), "L^2 T^-1"},
		{"energy", Energy, "L^2 M T^-2"},
		{"rational", Of(Length.PowFrac(1, 2)), "L^(1/2)"},
		{"negative rational", Of(Time.PowFrac(-3, 4)), "T^(-3/4)"},
		{"length times time", Length.Dimension().Mul(Time.Dimension()), "L T"},
		{"temperature", Temperature.Dimension(), "Θ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dim.String())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Dimension
	}{
		{"", Dimensionless},
		{"1", Dimensionless},
		{"L", Length.Dimension()},
		{"L^2 T^-1", Of(Length.Pow(2), Time.Pow(-1))},
		{"M*L^2*T^-2", Energy},
		{"L^(1/2)", Of(Length.PowFrac(1, 2))},
		{"L/T^2", Acceleration},
		{"1/T", Frequency},
		{"LT/M^3I", Of(Length.Pow(1), Time.Pow(1), Mass.Pow(-3), Current.Pow(-1))},
		{"Theta", Temperature.Dimension()},
		{"Θ N^-1", Of(Temperature.Pow(1), Amount.Pow(-1))},
		{"L·L", Area},
		{"  L^+2  ", Area},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, d := range sample {
		got, err := Parse(d.String())
		require.NoError(t, err, d.String())
		assert.Equal(t, d, got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"X", "L^", "L/T/M", "L^(1/2", "L^a", "/T", "L/"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}

	assert.Panics(t, func() { MustParse("Q") })
}

func TestTextMarshaling(t *testing.T) {
	type holder struct {
		Dim Dimension `json:"dim"`
	}

	data, err := json.Marshal(holder{Dim: Speed})
	require.NoError(t, err)
	assert.JSONEq(t, `{"dim":"L T^-1"}`, string(data))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"dim":"M L^2 T^-2"}`), &h))
	assert.Equal(t, Energy, h.Dim)

	assert.Error(t, json.Unmarshal([]byte(`{"dim":"bogus"}`), &h))
}

func TestNamed(t *testing.T) {
	assert.Equal(t, "speed", Speed.Name())
	assert.Equal(t, "energy", MustParse("M L^2 T^-2").Name())
	assert.Equal(t, "length", Length.Dimension().Name())
	assert.Equal(t, "", Of(Length.Pow(7)).Name())
	assert.Equal(t, Charge, Current.Dimension().Mul(Time.Dimension()))
	assert.Equal(t, Energy, Power.Mul(Time.Dimension()))
	assert.Equal(t, Power, Voltage.Mul(Current.Dimension()))

	d, ok := ByName("Luminous Intensity")
	assert.True(t, ok)
	assert.Equal(t, LuminousIntensity.Dimension(), d)
	_, ok = ByName("flux")
	assert.False(t, ok)
}

func TestIsBase(t *testing.T) {
	assert.True(t, Mass.Dimension().IsBase())
	assert.False(t, Area.IsBase())
	assert.False(t, Speed.IsBase())
	assert.False(t, Dimensionless.IsBase())
}

func TestBaseBySymbol(t *testing.T) {
	for _, b := range Bases() {
		got, ok := BaseBySymbol(b.Symbol())
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}
	_, ok := BaseBySymbol("Q")
	assert.False(t, ok)
}
