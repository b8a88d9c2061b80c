package types

// Conversion is one quantity expressed in one target unit.
type Conversion struct {
	Input         string  `json:"input" yaml:"input"`
	Value         float64 `json:"value" yaml:"value"`
	Unit          string  `json:"unit" yaml:"unit"`
	Formatted     string  `json:"formatted" yaml:"formatted"`
	Clock         string  `json:"clock,omitempty" yaml:"clock,omitempty"`
	Dimension     string  `json:"dimension" yaml:"dimension"`
	DimensionName string  `json:"dimensionName,omitempty" yaml:"dimensionName,omitempty"`
	Base          string  `json:"base" yaml:"base"`
}

// ConvertResult is returned by commands.Convert.
type ConvertResult struct {
	Conversions []Conversion `json:"conversions" yaml:"conversions"`
}

// DimResult describes a parsed unit expression.
type DimResult struct {
	Expression    string   `json:"expression" yaml:"expression"`
	Dimension     string   `json:"dimension" yaml:"dimension"`
	DimensionName string   `json:"dimensionName,omitempty" yaml:"dimensionName,omitempty"`
	Scale         float64  `json:"scale" yaml:"scale"`
	Offset        float64  `json:"offset,omitempty" yaml:"offset,omitempty"`
	Affine        bool     `json:"affine,omitempty" yaml:"affine,omitempty"`
	Base          string   `json:"base" yaml:"base"`
	Units         []string `json:"units,omitempty" yaml:"units,omitempty"`
}

// CheckResult reports whether two quantities or unit expressions share a
// dimension.
type CheckResult struct {
	Left           string   `json:"left" yaml:"left"`
	Right          string   `json:"right" yaml:"right"`
	LeftDimension  string   `json:"leftDimension" yaml:"leftDimension"`
	RightDimension string   `json:"rightDimension" yaml:"rightDimension"`
	Compatible     bool     `json:"compatible" yaml:"compatible"`
	Ratio          *float64 `json:"ratio,omitempty" yaml:"ratio,omitempty"`
}

// UnitInfo is one registry entry.
type UnitInfo struct {
	Symbol        string   `json:"symbol" yaml:"symbol"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Aliases       []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Dimension     string   `json:"dimension" yaml:"dimension"`
	DimensionName string   `json:"dimensionName,omitempty" yaml:"dimensionName,omitempty"`
	Scale         float64  `json:"scale" yaml:"scale"`
	Offset        float64  `json:"offset,omitempty" yaml:"offset,omitempty"`
	Prefixable    bool     `json:"prefixable" yaml:"prefixable"`
}

// PrefixInfo is one SI prefix.
type PrefixInfo struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Name   string  `json:"name" yaml:"name"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// UnitsResult is returned by commands.ListUnits.
type UnitsResult struct {
	Dimension string       `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	Units     []UnitInfo   `json:"units" yaml:"units"`
	Prefixes  []PrefixInfo `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
}

// PaceRow is the finishing time at one speed for every distance.
type PaceRow struct {
	Speed float64  `json:"speed" yaml:"speed"`
	Times []string `json:"times" yaml:"times"`
}

// PaceResult is returned by commands.PaceTable.
type PaceResult struct {
	SpeedUnit string    `json:"speedUnit" yaml:"speedUnit"`
	Distances []string  `json:"distances" yaml:"distances"`
	Rows      []PaceRow `json:"rows" yaml:"rows"`
}

// GenConfigResult is returned by commands.GenConfig.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent" yaml:"configContent"`
	FilesWritten  []string `json:"filesWritten" yaml:"filesWritten"`
}
