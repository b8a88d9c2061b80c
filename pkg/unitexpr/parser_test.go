package unitexpr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/units"
)

func newTestParser(opts ...Option) *Parser {
	return NewParser(units.NewDefaultRegistry(), opts...)
}

func TestParse(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		input string
		dim   dimension.Dimension
		scale float64
	}{
		{"", dimension.Dimensionless, 1},
		{"   ", dimension.Dimensionless, 1},
		{"1", dimension.Dimensionless, 1},
		{"m", dimension.Length.Dimension(), 1},
		{"km", dimension.Length.Dimension(), 1e3},
		{"m^2/s", dimension.Of(dimension.Length.Pow(2), dimension.Time.Pow(-1)), 1},
		{"km^2/s", dimension.Of(dimension.Length.Pow(2), dimension.Time.Pow(-1)), 1e6},
		{"kg*m/s^2", dimension.Force, 1},
		{"kg m s^-2", dimension.Force, 1},
		{"kg·m^2·s^-2", dimension.Energy, 1},
		{"m/s*kg", dimension.Of(dimension.Length.Pow(1), dimension.Mass.Pow(1), dimension.Time.Pow(-1)), 1},
		{"m/s/s", dimension.Acceleration, 1},
		{"1/s", dimension.Frequency, 1},
		{"mi/hr", dimension.Speed, 1609.344 / 3600},
		{"m^(1/2)", dimension.Of(dimension.Length.PowFrac(1, 2)), 1},
		{"km^(1/2)", dimension.Of(dimension.Length.PowFrac(1, 2)), 31.622776601683793},
		{"m ^ 2", dimension.Area, 1},
		{"m^+2", dimension.Area, 1},
		{"m/km", dimension.Dimensionless, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.dim, expr.Dimension, "dimension of %q", tt.input)
			assert.InDelta(t, tt.scale, expr.Scale, tt.scale*1e-12)
			assert.Zero(t, expr.Offset)
		})
	}
}

func TestParseFactors(t *testing.T) {
	expr, err := newTestParser().Parse("mm^2/s")
	require.NoError(t, err)
	require.Len(t, expr.Factors, 2)

	assert.Equal(t, "mm", expr.Factors[0].Symbol)
	assert.Equal(t, dimension.Int(2), expr.Factors[0].Exponent)
	assert.True(t, expr.Factors[0].Match.HasPrefix())

	assert.Equal(t, "s", expr.Factors[1].Symbol)
	assert.Equal(t, dimension.Int(-1), expr.Factors[1].Exponent)
	assert.Equal(t, "mm^2/s", expr.String())
	assert.InDelta(t, 1e-6, expr.Scale, 1e-18)
}

func TestParseSyntaxErrors(t *testing.T) {
	p := newTestParser()

	inputs := []string{
		"m//s",
		"/s",
		"*m",
		"m/",
		"m*",
		"m^",
		"m^x",
		"m^(1/2",
		"m^(1/0)",
		"m^2s",
		"m$",
		"2m",
		"m^2^3",
		"^2",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := p.Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnitSyntax), "got %v", err)
			assert.Equal(t, input, errors.GetErrorDetails(err)["expression"])
		})
	}
}

func TestParseExponentRange(t *testing.T) {
	p := newTestParser()

	expr, err := p.Parse("m^(1/2147483647)")
	require.NoError(t, err)
	assert.Equal(t, dimension.Frac(1, dimension.MaxExponentPart), expr.Dimension.Exponent(dimension.Length))

	for _, input := range []string{
		"m^(1/4294967296)*m^(1/4294967296)",
		"m^(1/3037000500) s^(1/3037000500)/m^(1/3037000499)",
		"m^(1/2147483647)*m^(1/2147483646)",
		"m^(1/2147483647)/km^(1/2147483646)",
	} {
		t.Run(input, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := p.Parse(input)
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnitSyntax), "got %v", err)
			})
		})
	}
}

func TestCompactProductsNeedOperators(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"kgm^2/s^2", "C/minK^2", "m/kgs^2"} {
		_, err := p.Parse(input)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownUnit), "%s: got %v", input, err)
	}

	spaced, err := p.Parse("kg m^2/s^2")
	require.NoError(t, err)
	assert.Equal(t, dimension.Energy, spaced.Dimension)

	ms, err := p.Parse("ms")
	require.NoError(t, err)
	assert.Equal(t, dimension.Time.Dimension(), ms.Dimension)
}

func TestRegisteredNamesParse(t *testing.T) {
	p := newTestParser()
	for _, u := range p.Registry().Units() {
		for _, name := range u.Names() {
			expr, err := p.Parse(name)
			require.NoError(t, err, name)
			assert.Equal(t, u.Dimension, expr.Dimension, name)
		}
	}

	err := p.Registry().Register(units.Unit{Symbol: "ft-lbf", Dimension: dimension.Energy, Scale: 1.3558})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnitDefinition), "got %v", err)
}

func TestParseUnknownUnit(t *testing.T) {
	p := newTestParser()

	for _, input := range []string{"xyz", "m/xyz", "kmi", "kdegC"} {
		t.Run(input, func(t *testing.T) {
			_, err := p.Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownUnit), "got %v", err)
		})
	}
}

func TestAffine(t *testing.T) {
	p := newTestParser()

	celsius, err := p.Parse("degC")
	require.NoError(t, err)
	assert.True(t, celsius.IsAffine())
	assert.InDelta(t, 273.15, celsius.ToBase(0), 1e-9)
	assert.InDelta(t, 100, celsius.FromBase(373.15), 1e-9)

	t.Run("compound expressions use intervals", func(t *testing.T) {
		for _, input := range []string{"degC/s", "degC^2", "1/degC", "degC m"} {
			expr, err := p.Parse(input)
			require.NoError(t, err, input)
			assert.False(t, expr.IsAffine(), input)
		}
	})

	fahrenheit, err := p.Parse("°F")
	require.NoError(t, err)
	assert.InDelta(t, 255.3722222, fahrenheit.ToBase(0), 1e-6)
}

func TestCache(t *testing.T) {
	reg := units.NewDefaultRegistry()
	p := NewParser(reg)

	_, err := p.Parse("furlong")
	require.True(t, errors.IsErrorCode(err, errors.ErrUnknownUnit))

	first, err := p.Parse("km/s")
	require.NoError(t, err)
	again, err := p.Parse("km/s")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, reg.Register(units.Unit{Symbol: "furlong", Dimension: dimension.Length.Dimension(), Scale: 201.168}))

	expr, err := p.Parse("furlong")
	require.NoError(t, err, "cache must not hide units registered later")
	assert.InDelta(t, 201.168, expr.Scale, 1e-9)

	p.mu.RLock()
	assert.Equal(t, reg.Generation(), p.cacheGen)
	p.mu.RUnlock()
}

func TestWithoutCache(t *testing.T) {
	p := newTestParser(WithoutCache())
	_, err := p.Parse("km")
	require.NoError(t, err)
	assert.Empty(t, p.cache)

	assert.True(t, newTestParser(WithCache(true)).useCache)
}

func TestConcurrentParse(t *testing.T) {
	p := newTestParser()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				expr, err := p.Parse("kg*m^2/s^2")
				assert.NoError(t, err)
				assert.Equal(t, dimension.Energy, expr.Dimension)
			}
		}()
	}
	wg.Wait()
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Same(t, units.Default(), Default().Registry())
	assert.NotPanics(t, func() { Default().MustParse("km") })
	assert.Panics(t, func() { Default().MustParse("m//s") })
}
