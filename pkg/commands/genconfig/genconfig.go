package genconfig

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/physq/pkg/config"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Write saves the content to Path instead of only returning it.
	Write bool
	// Path defaults to config.DefaultPath().
	Path string
	// Force overwrites an existing file.
	Force bool
}

// GenConfig returns the commented starter configuration and, with Write,
// saves it.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	target := opts.Path
	if target == "" {
		target = config.DefaultPath()
	}

	exists, err := afero.Exists(fs, target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to stat %s", target)
	}
	if exists && !opts.Force {
		return nil, errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", target).
			WithDetail("path", target)
	}

	if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create directory %s", filepath.Dir(target))
	}
	if err := afero.WriteFile(fs, target, []byte(result.ConfigContent), os.FileMode(0644)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
