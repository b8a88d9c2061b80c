package physq

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/testutil"
	"github.com/arthur-debert/physq/pkg/types"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateEnv(t, nil)
	if fs == nil {
		fs = afero.NewMemMapFs()
	}

	cmd := NewRootCmdWithOptions(RootOptions{Fs: fs})
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestConvertCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, nil, "convert", "5 km", "mi", "m", "--precision", "6", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "5 km = 3.10686 mi\n")
		assert.Contains(t, out, "5 km = 5000 m\n")
		assert.Contains(t, out, "dimension: L (length)")
	})

	t.Run("unquoted quantity", func(t *testing.T) {
		out, err := execute(t, nil, "convert", "5", "km", "mi", "--format", "json")
		require.NoError(t, err)
		result := decode[types.ConvertResult](t, out)
		require.Len(t, result.Conversions, 1)
		assert.Equal(t, "5 km", result.Conversions[0].Input)
		assert.Equal(t, "mi", result.Conversions[0].Unit)
		assert.InDelta(t, 3.10686, result.Conversions[0].Value, 1e-5)
	})

	t.Run("clock", func(t *testing.T) {
		out, err := execute(t, nil, "convert", "3725 s", "min", "--clock", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "(1:02:05)")
	})

	t.Run("dimension mismatch renders as json", func(t *testing.T) {
		out, err := execute(t, nil, "convert", "5 km", "s", "--format", "json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDimensionMismatch), "got %v", err)

		obj := decode[map[string]interface{}](t, out)
		assert.Equal(t, "DIMENSION_MISMATCH", obj["code"])
	})

	t.Run("text errors are left to the caller", func(t *testing.T) {
		out, err := execute(t, nil, "convert", "5 parsec", "m", "--format", "text")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownUnit), "got %v", err)
		assert.Empty(t, out)
	})
}

func TestDimCommand(t *testing.T) {
	out, err := execute(t, nil, "dim", "kg", "m", "s^-2", "--format", "json")
	require.NoError(t, err)

	result := decode[types.DimResult](t, out)
	assert.Equal(t, "L M T^-2", result.Dimension)
	assert.Equal(t, "force", result.DimensionName)
	assert.Equal(t, 1.0, result.Scale)
	assert.Contains(t, result.Units, "N")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, nil, "check", "1 mi", "1 km", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[COMPATIBLE]")
	assert.Contains(t, out, "ratio 1.60934")

	out, err = execute(t, nil, "check", "3 m/s", "3 m/s^2", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[INCOMPATIBLE]")

	out, err = execute(t, nil, "check", "3 m/s", "3 m/s^2", "--strict", "--format", "text")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDimensionMismatch), "got %v", err)
	assert.Contains(t, out, "[INCOMPATIBLE]")

	_, err = execute(t, nil, "check", "1 m")
	assert.Error(t, err)
}

func TestUnitsCommand(t *testing.T) {
	out, err := execute(t, nil, "units", "-d", "temperature", "--format", "json")
	require.NoError(t, err)

	result := decode[types.UnitsResult](t, out)
	var symbols []string
	for _, u := range result.Units {
		symbols = append(symbols, u.Symbol)
	}
	assert.Equal(t, []string{"K", "R", "degC", "degF"}, symbols)
	assert.Empty(t, result.Prefixes)

	out, err = execute(t, nil, "units", "-d", "mi/hr", "--prefixes", "--format", "json")
	require.NoError(t, err)
	result = decode[types.UnitsResult](t, out)
	assert.NotEmpty(t, result.Prefixes)
	for _, u := range result.Units {
		assert.Equal(t, "L T^-1", u.Dimension)
	}
}

func TestPaceCommand(t *testing.T) {
	out, err := execute(t, nil, "pace", "--from", "6", "--to", "6", "--step", "1", "1 mile", "10 km", "--format", "json")
	require.NoError(t, err)

	result := decode[types.PaceResult](t, out)
	assert.Equal(t, "mph", result.SpeedUnit)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"10:00", "1:02:08"}, result.Rows[0].Times)
}

func TestPaceDefaultsFromConfig(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{
		"/physq.toml": `
[pace]
speed_unit = "km/hr"
from = 12.0
to = 12.0
step = 1.0
distances = ["1 marathon"]
`,
	})

	out, err := execute(t, fs, "pace", "--config", "/physq.toml", "--format", "json")
	require.NoError(t, err)

	result := decode[types.PaceResult](t, out)
	assert.Equal(t, "km/hr", result.SpeedUnit)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, []string{"3:30:58"}, result.Rows[0].Times)
}

func TestConfigFile(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{
		"/physq.toml": "[display]\nprecision = 3\nformat = \"text\"\n",
	})

	out, err := execute(t, fs, "convert", "5 km", "mi", "--config", "/physq.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "5 km = 3.11 mi")

	out, err = execute(t, fs, "convert", "5 km", "mi", "--config", "/physq.toml", "-p", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "5 km = 3.1069 mi")
}

func TestUnitsFileFlag(t *testing.T) {
	fs := testutil.MemFs(t, map[string]string{
		"/smoot.yaml": "units:\n  - symbol: smoot\n    aliases: [smoots]\n    definition: 1.7018 m\n",
	})

	out, err := execute(t, fs, "convert", "2 smoots", "m", "--units-file", "/smoot.yaml", "--format", "json")
	require.NoError(t, err)
	result := decode[types.ConvertResult](t, out)
	assert.InDelta(t, 3.4036, result.Conversions[0].Value, 1e-9)

	_, err = execute(t, fs, "convert", "2 smoots", "m", "--format", "json")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownUnit), "got %v", err)

	_, err = execute(t, fs, "convert", "1 m", "--units-file", "/missing.yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
}

func TestBrokenConfig(t *testing.T) {
	_, err := execute(t, nil, "convert", "1 m", "--config", "/missing.toml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)

	out, err := execute(t, nil, "version", "--config", "/missing.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "physq dev")

	_, err = execute(t, nil, "convert", "1 m", "--format", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
}

func TestGenConfigCommand(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "gen-config", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[display]")

	_, err = execute(t, fs, "gen-config", "-w", "--path", "/etc/physq/config.toml")
	require.NoError(t, err)
	exists, err := afero.Exists(fs, "/etc/physq/config.toml")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = execute(t, fs, "gen-config", "-w", "--path", "/etc/physq/config.toml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists), "got %v", err)

	_, err = execute(t, fs, "gen-config", "-w", "--path", "/etc/physq/config.toml", "--force")
	assert.NoError(t, err)

	// The generated file is valid and entirely commented out.
	out, err = execute(t, fs, "convert", "5 km", "mi", "--config", "/etc/physq/config.toml", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"unit": "mi"`)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, nil, "config", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[pace]")

	out, err = execute(t, nil, "config", "--format", "json")
	require.NoError(t, err)
	obj := decode[map[string]interface{}](t, out)
	assert.Contains(t, obj, "display")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, nil, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"config", "expressions", "pace", "temperature", "units", "--format", "--units-file"} {
		assert.Contains(t, out, topic)
	}

	out, err = execute(t, nil, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics:")

	out, err = execute(t, nil, "help", "temperature")
	require.NoError(t, err)
	assert.Contains(t, out, "Rankine")
}

func TestCommandStructure(t *testing.T) {
	cmd := NewRootCmd()

	groups := map[string]string{}
	for _, c := range cmd.Commands() {
		groups[c.Name()] = c.GroupID
	}
	for _, name := range []string{"convert", "dim", "check", "units", "pace"} {
		assert.Equal(t, "core", groups[name], name)
	}
	for _, name := range []string{"gen-config", "config", "version", "topics", "completion", "help"} {
		assert.Equal(t, "misc", groups[name], name)
	}

	var topicsCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "topics" {
			topicsCmd = c
		}
	}
	require.NotNil(t, topicsCmd)
	assert.Equal(t, MsgTopicsShort, topicsCmd.Short)
}

func TestNoCommand(t *testing.T) {
	_, err := execute(t, nil)
	assert.EqualError(t, err, MsgErrNoCommand)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, nil, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "physq")

	_, err = execute(t, nil, "completion", "tcsh")
	assert.Error(t, err)
}
