// Package unitdefs extends a unit registry from definition files. A file
// holds a list of units, each defined either by a quantity literal in terms
// of units that already exist, or by an explicit dimension and scale:
//
//	[[units]]
//	symbol = "furlong"
//	aliases = ["furlongs"]
//	definition = "201.168 m"
//
//	[[units]]
//	symbol = "degRe"
//	dimension = "Θ"
//	scale = 1.25
//	offset = 273.15
//
// TOML and YAML are both accepted; the format follows the file extension.
package unitdefs

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/unitexpr"
	"github.com/arthur-debert/physq/pkg/units"
)

// Definition is one user-defined unit as written in a file or in the
// [[units]] section of the config.
type Definition struct {
	Symbol     string   `koanf:"symbol" toml:"symbol" yaml:"symbol"`
	Name       string   `koanf:"name" toml:"name,omitempty" yaml:"name,omitempty"`
	Aliases    []string `koanf:"aliases" toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Definition string   `koanf:"definition" toml:"definition,omitempty" yaml:"definition,omitempty"`
	Dimension  string   `koanf:"dimension" toml:"dimension,omitempty" yaml:"dimension,omitempty"`
	Scale      float64  `koanf:"scale" toml:"scale,omitempty" yaml:"scale,omitempty"`
	Offset     float64  `koanf:"offset" toml:"offset,omitempty" yaml:"offset,omitempty"`
	Prefixable bool     `koanf:"prefixable" toml:"prefixable,omitempty" yaml:"prefixable,omitempty"`
}

// File is the top-level document of a definition file.
type File struct {
	Units []Definition `koanf:"units" toml:"units" yaml:"units"`
}

// Format selects the decoder for a definition file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the extension; anything that is not
// .yaml or .yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode parses a definition document.
func Decode(data []byte, format Format) (File, error) {
	var file File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	default:
		return File{}, errors.Newf(errors.ErrInvalidInput, "unsupported unit file format %q", format)
	}
	if err != nil {
		return File{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s unit definitions", format)
	}
	return file, nil
}

// Encode renders definitions in the given format.
func Encode(defs []Definition, format Format) ([]byte, error) {
	file := File{Units: defs}
	switch format {
	case FormatYAML:
		return yaml.Marshal(file)
	case FormatTOML:
		return toml.Marshal(file)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported unit file format %q", format)
	}
}

// LoadFile reads and decodes one definition file from fs.
func LoadFile(fs afero.Fs, path string) ([]Definition, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read unit file %s", path).
			WithDetail("path", path)
	}

	file, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid unit file %s", path).
			WithDetail("path", path)
	}

	log.Debug().Str("path", path).Int("units", len(file.Units)).Msg("Unit file loaded")
	return file.Units, nil
}

// Validate checks the shape of a definition without touching a registry.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Symbol) == "" {
		return errors.New(errors.ErrUnitDefinition, "unit definition needs a symbol")
	}
	hasLiteral := d.Definition != ""
	hasDimension := d.Dimension != ""
	switch {
	case hasLiteral && hasDimension:
		return d.invalid("use either definition or dimension and scale, not both")
	case !hasLiteral && !hasDimension:
		return d.invalid("needs a definition or a dimension and scale")
	case hasLiteral && d.Offset != 0:
		return d.invalid("offset is only allowed together with dimension and scale")
	case hasDimension && d.Scale <= 0:
		return d.invalid("scale must be positive")
	}
	return nil
}

// Unit resolves the definition against the registry behind p.
func (d Definition) Unit(p *unitexpr.Parser) (units.Unit, error) {
	if err := d.Validate(); err != nil {
		return units.Unit{}, err
	}

	u := units.Unit{
		Symbol:     d.Symbol,
		Name:       d.Name,
		Aliases:    d.Aliases,
		Offset:     d.Offset,
		Prefixable: d.Prefixable,
	}

	if d.Dimension != "" {
		dim, err := dimension.Parse(d.Dimension)
		if err != nil {
			return units.Unit{}, errors.Wrapf(err, errors.ErrUnitDefinition, "unit %q has an invalid dimension", d.Symbol).
				WithDetail("symbol", d.Symbol)
		}
		u.Dimension = dim
		u.Scale = d.Scale
		return u, nil
	}

	value, expr, err := p.ParseLiteral(d.Definition)
	if err != nil {
		return units.Unit{}, errors.Wrapf(err, errors.ErrUnitDefinition, "unit %q has an invalid definition %q", d.Symbol, d.Definition).
			WithDetail("symbol", d.Symbol)
	}
	if expr.IsAffine() {
		return units.Unit{}, d.invalid("definitions cannot be based on an affine unit; give dimension, scale and offset instead")
	}
	u.Dimension = expr.Dimension
	u.Scale = value * expr.Scale
	return u, nil
}

func (d Definition) invalid(reason string) error {
	return errors.Newf(errors.ErrUnitDefinition, "unit %q: %s", d.Symbol, reason).
		WithDetail("symbol", d.Symbol)
}

// Apply registers defs in order, so later definitions may use earlier ones.
// It stops at the first failure.
func Apply(reg *units.Registry, defs []Definition) error {
	parser := unitexpr.NewParser(reg)
	for _, def := range defs {
		u, err := def.Unit(parser)
		if err != nil {
			return err
		}
		if err := reg.Register(u); err != nil {
			return err
		}
	}
	return nil
}

// LoadInto reads each path from fs and applies its definitions to reg.
func LoadInto(fs afero.Fs, reg *units.Registry, paths ...string) error {
	for _, path := range paths {
		defs, err := LoadFile(fs, path)
		if err != nil {
			return err
		}
		if err := Apply(reg, defs); err != nil {
			return errors.Wrapf(err, errors.GetErrorCode(err), "failed to apply unit file %s", path).
				WithDetail("path", path)
		}
	}
	return nil
}
