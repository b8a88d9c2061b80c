package genconfig

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/physq/pkg/errors"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		result, err := GenConfig(GenConfigOptions{Fs: afero.NewMemMapFs()})
		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "[display]")
		assert.Contains(t, result.ConfigContent, "[pace]")
		assert.Empty(t, result.FilesWritten)

		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
				(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}
	})

	t.Run("write file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		result, err := GenConfig(GenConfigOptions{Fs: fs, Write: true, Path: "/cfg/physq/config.toml"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/cfg/physq/config.toml"}, result.FilesWritten)

		data, err := afero.ReadFile(fs, "/cfg/physq/config.toml")
		require.NoError(t, err)
		assert.Equal(t, result.ConfigContent, string(data))

		_, err = GenConfig(GenConfigOptions{Fs: fs, Write: true, Path: "/cfg/physq/config.toml"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		_, err = GenConfig(GenConfigOptions{Fs: fs, Write: true, Path: "/cfg/physq/config.toml", Force: true})
		assert.NoError(t, err)
	})
}
