package config

import (
	_ "embed"
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/arthur-debert/physq/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "PHYSQ_"

// sections are the tables whose keys may themselves contain underscores,
// so PHYSQ_DISPLAY_NO_COLOR maps to display.no_color.
var sections = []string{"logging", "display", "registry", "pace"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options tune Load. The zero value reads the default config path from
// the OS filesystem.
type Options struct {
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Path is an explicit config file; it must exist. When empty the
	// default path is used if present.
	Path string
	// Overrides are applied last, keyed by dotted path ("display.format").
	Overrides map[string]interface{}
	// EnvPrefix defaults to PHYSQ_.
	EnvPrefix string
	// SkipEnv ignores the environment entirely.
	SkipEnv bool
}

// DefaultPath is $XDG_CONFIG_HOME/physq/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "physq", "config.toml")
}

// Load merges defaults, config file, environment and overrides, in that
// order, and validates the result.
func Load(opts Options) (*Config, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = EnvPrefix
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	path := opts.Path
	if path == "" {
		path = DefaultPath()
	}
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config file %s", path)
	}
	switch {
	case exists:
		if err := loadFile(k, fs, path); err != nil {
			return nil, err
		}
	case opts.Path != "":
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", path).
			WithDetail("path", path)
	default:
		path = ""
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(prefix, ".", envKey(prefix)), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Path = path

	// 6. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Str("format", cfg.Display.Format).
		Int("unitFiles", len(cfg.UnitFiles)).
		Int("inlineUnits", len(cfg.Units)).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() *Config {
	cfg, err := Load(Options{Fs: afero.NewMemMapFs(), SkipEnv: true})
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadFile(k *koanf.Koanf, fs afero.Fs, path string) error {
	parser := koanf.Parser(toml.Parser())
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	var provider koanf.Provider
	if _, ok := fs.(*afero.OsFs); ok {
		provider = file.Provider(path)
	} else {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
				WithDetail("path", path)
		}
		provider = &rawBytesProvider{bytes: data}
	}

	if err := k.Load(provider, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps PHYSQ_DISPLAY_NO_COLOR to display.no_color and
// PHYSQ_UNIT_FILES to unit_files.
func envKey(prefix string) func(string) string {
	return func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, prefix))
		for _, section := range sections {
			if strings.HasPrefix(key, section+"_") {
				return section + "." + strings.TrimPrefix(key, section+"_")
			}
		}
		return key
	}
}
