// Package commands provides the high-level operations behind the physq CLI.
//
// Each command lives in its own subdirectory and returns a result from
// pkg/types that pkg/output knows how to render:
//   - convert/    - Convert command
//   - dim/        - Dim command
//   - check/      - Check command
//   - listunits/  - ListUnits command
//   - pacetable/  - PaceTable command
//   - genconfig/  - GenConfig command
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/physq/pkg/commands/check"
	"github.com/arthur-debert/physq/pkg/commands/convert"
	"github.com/arthur-debert/physq/pkg/commands/dim"
	"github.com/arthur-debert/physq/pkg/commands/genconfig"
	"github.com/arthur-debert/physq/pkg/commands/listunits"
	"github.com/arthur-debert/physq/pkg/commands/pacetable"
	"github.com/arthur-debert/physq/pkg/types"
)

// Convert expresses a quantity in one or more units.
type ConvertOptions = convert.ConvertOptions

func Convert(opts ConvertOptions) (*types.ConvertResult, error) {
	return convert.Convert(opts)
}

// Dim describes the dimension and scale of a unit expression.
type DimOptions = dim.DimOptions

func Dim(opts DimOptions) (*types.DimResult, error) {
	return dim.Dim(opts)
}

// Check compares the dimensions of two quantities or unit expressions.
type CheckOptions = check.CheckOptions

func Check(opts CheckOptions) (*types.CheckResult, error) {
	return check.Check(opts)
}

// ListUnits lists the registry, optionally restricted to one dimension.
type ListUnitsOptions = listunits.ListUnitsOptions

func ListUnits(opts ListUnitsOptions) (*types.UnitsResult, error) {
	return listunits.ListUnits(opts)
}

// PaceTable computes finishing times over a range of speeds.
type PaceTableOptions = pacetable.PaceTableOptions

func PaceTable(opts PaceTableOptions) (*types.PaceResult, error) {
	return pacetable.PaceTable(opts)
}

// GenConfig outputs or writes the starter configuration file.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
