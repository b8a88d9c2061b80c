package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"text", FormatText},
		{"plain", FormatText},
		{"json", FormatJSON},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("html")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestAutoOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &tableRenderer{}, r)
	assert.False(t, r.(*tableRenderer).styled)
}

func TestTextConvert(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.ConvertResult{Conversions: []types.Conversion{
		{Input: "5 km", Formatted: "3.10686 mi", Dimension: "L", DimensionName: "length"},
		{Input: "5 km", Formatted: "5000 m", Dimension: "L", DimensionName: "length"},
	}}))

	assert.Equal(t, "5 km = 3.10686 mi\n5 km = 5000 m\ndimension: L (length)\n", buf.String())
}

func TestTextCheck(t *testing.T) {
	var buf bytes.Buffer
	r, _ := NewRenderer(FormatText, &buf)

	ratio := 1.609344
	require.NoError(t, r.RenderResult(&types.CheckResult{
		Left: "1 mi", Right: "1 km", LeftDimension: "L", RightDimension: "L", Compatible: true, Ratio: &ratio,
	}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[COMPATIBLE]\n"), out)
	assert.Contains(t, out, "ratio 1.609344")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.CheckResult{Left: "1 m", Right: "1 s", LeftDimension: "L", RightDimension: "T"}))
	assert.Contains(t, buf.String(), "[INCOMPATIBLE]")
	assert.NotContains(t, buf.String(), "ratio")
}

func TestTextTables(t *testing.T) {
	var buf bytes.Buffer
	r, _ := NewRenderer(FormatText, &buf)

	require.NoError(t, r.RenderResult(&types.PaceResult{
		SpeedUnit: "mph",
		Distances: []string{"1 mile", "5 km"},
		Rows:      []types.PaceRow{{Speed: 6, Times: []string{"10:00", "31:04"}}},
	}))
	out := buf.String()
	for _, want := range []string{"mph", "1 mile", "5 km", "6.0", "10:00", "31:04"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "text output must not carry ANSI codes")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.UnitsResult{
		Dimension: "Θ",
		Units:     []types.UnitInfo{{Symbol: "degC", Name: "degree Celsius", Dimension: "Θ", Scale: 1, Offset: 273.15}},
	}))
	assert.Contains(t, buf.String(), "Units of dimension Θ")
	assert.Contains(t, buf.String(), "273.15")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.UnitsResult{}))
	assert.Contains(t, buf.String(), "No units found")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.DimResult{Expression: "degC", Dimension: "Θ", Scale: 1, Offset: 273.15, Affine: true, Base: "K"}))
	assert.Contains(t, buf.String(), "offset")
	assert.Contains(t, buf.String(), "base units")
}

func TestTextError(t *testing.T) {
	var buf bytes.Buffer
	r, _ := NewRenderer(FormatText, &buf)
	require.NoError(t, r.RenderError(errors.New(errors.ErrUnknownUnit, "unknown unit \"parsec\"")))
	assert.Equal(t, "Error: [UNKNOWN_UNIT] unknown unit \"parsec\"\n", buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.DimResult{Expression: "mi/hr", Dimension: "L T^-1", Scale: 0.44704, Base: "m/s"}))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "L T^-1", decoded["dimension"])
	assert.NotContains(t, decoded, "offset")

	buf.Reset()
	err = errors.DimensionMismatch("add", "L", "T")
	require.NoError(t, r.RenderError(err))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "DIMENSION_MISMATCH", decoded["code"])
	assert.Equal(t, "T", decoded["details"].(map[string]interface{})["actual"])
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.PaceResult{SpeedUnit: "mph", Distances: []string{"5 km"}, Rows: []types.PaceRow{{Speed: 6, Times: []string{"31:04"}}}}))

	var decoded types.PaceResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "mph", decoded.SpeedUnit)
	assert.Equal(t, []string{"31:04"}, decoded.Rows[0].Times)

	buf.Reset()
	require.NoError(t, r.RenderMessage("hello"))
	assert.Equal(t, "message: hello\n", buf.String())
}
