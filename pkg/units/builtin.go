package units

import (
	d "github.com/arthur-debert/physq/pkg/dimension"
)

var siPrefixes = []Prefix{
	{Symbol: "Y", Name: "yotta", Factor: 1e24},
	{Symbol: "Z", Name: "zetta", Factor: 1e21},
	{Symbol: "E", Name: "exa", Factor: 1e18},
	{Symbol: "P", Name: "peta", Factor: 1e15},
	{Symbol: "T", Name: "tera", Factor: 1e12},
	{Symbol: "G", Name: "giga", Factor: 1e9},
	{Symbol: "M", Name: "mega", Factor: 1e6},
	{Symbol: "k", Name: "kilo", Factor: 1e3},
	{Symbol: "h", Name: "hecto", Factor: 1e2},
	{Symbol: "da", Name: "deca", Factor: 1e1},
	{Symbol: "d", Name: "deci", Factor: 1e-1},
	{Symbol: "c", Name: "centi", Factor: 1e-2},
	{Symbol: "m", Name: "milli", Factor: 1e-3},
	{Symbol: "µ", Name: "micro", Factor: 1e-6},
	{Symbol: "μ", Name: "micro", Factor: 1e-6},
	{Symbol: "u", Name: "micro", Factor: 1e-6},
	{Symbol: "n", Name: "nano", Factor: 1e-9},
	{Symbol: "p", Name: "pico", Factor: 1e-12},
	{Symbol: "f", Name: "femto", Factor: 1e-15},
	{Symbol: "a", Name: "atto", Factor: 1e-18},
	{Symbol: "z", Name: "zepto", Factor: 1e-21},
	{Symbol: "y", Name: "yocto", Factor: 1e-24},
}

var (
	length = d.Length.Dimension()
	mass   = d.Mass.Dimension()
	time   = d.Time.Dimension()
	temp   = d.Temperature.Dimension()

	resistance  = d.Of(d.Mass.Pow(1), d.Length.Pow(2), d.Time.Pow(-3), d.Current.Pow(-2))
	capacitance = d.Of(d.Mass.Pow(-1), d.Length.Pow(-2), d.Time.Pow(4), d.Current.Pow(2))
	flux        = d.Of(d.Mass.Pow(1), d.Length.Pow(2), d.Time.Pow(-2), d.Current.Pow(-1))
	fluxDensity = d.Of(d.Mass.Pow(1), d.Time.Pow(-2), d.Current.Pow(-1))
	inductance  = d.Of(d.Mass.Pow(1), d.Length.Pow(2), d.Time.Pow(-2), d.Current.Pow(-2))
	dose        = d.Of(d.Length.Pow(2), d.Time.Pow(-2))
)

const (
	mile     = 1609.344
	marathon = 42194.988
	rankine  = 5.0 / 9.0
)

var builtinUnits = []Unit{
	// SI base units. kg is the base unit of mass but g carries the prefixes.
	{Symbol: "m", Name: "metre", Aliases: []string{"meter", "meters", "metre", "metres"}, Dimension: length, Scale: 1, Prefixable: true},
	{Symbol: "km", Name: "kilometre", Aliases: []string{"kilometer", "kilometers", "kilometre", "kilometres"}, Dimension: length, Scale: 1e3},
	{Symbol: "kg", Name: "kilogram", Aliases: []string{"kilogram", "kilograms"}, Dimension: mass, Scale: 1},
	{Symbol: "g", Name: "gram", Aliases: []string{"gram", "grams", "gr"}, Dimension: mass, Scale: 1e-3, Prefixable: true},
	{Symbol: "s", Name: "second", Aliases: []string{"second", "seconds", "sec", "secs"}, Dimension: time, Scale: 1, Prefixable: true},
	{Symbol: "A", Name: "ampere", Aliases: []string{"ampere", "amperes", "amp", "amps"}, Dimension: d.Current.Dimension(), Scale: 1, Prefixable: true},
	{Symbol: "K", Name: "kelvin", Aliases: []string{"kelvin", "kelvins"}, Dimension: temp, Scale: 1, Prefixable: true},
	{Symbol: "mol", Name: "mole", Aliases: []string{"mole", "moles"}, Dimension: d.Amount.Dimension(), Scale: 1, Prefixable: true},
	{Symbol: "cd", Name: "candela", Aliases: []string{"candela", "candelas"}, Dimension: d.LuminousIntensity.Dimension(), Scale: 1, Prefixable: true},

	// Derived SI units
	{Symbol: "Hz", Name: "hertz", Aliases: []string{"hertz"}, Dimension: d.Frequency, Scale: 1, Prefixable: true},
	{Symbol: "N", Name: "newton", Aliases: []string{"newton", "newtons"}, Dimension: d.Force, Scale: 1, Prefixable: true},
	{Symbol: "Pa", Name: "pascal", Aliases: []string{"pascal", "pascals"}, Dimension: d.Pressure, Scale: 1, Prefixable: true},
	{Symbol: "J", Name: "joule", Aliases: []string{"joule", "joules"}, Dimension: d.Energy, Scale: 1, Prefixable: true},
	{Symbol: "W", Name: "watt", Aliases: []string{"watt", "watts"}, Dimension: d.Power, Scale: 1, Prefixable: true},
	{Symbol: "Wh", Name: "watt-hour", Dimension: d.Energy, Scale: 3600, Prefixable: true},
	{Symbol: "C", Name: "coulomb", Aliases: []string{"coulomb", "coulombs"}, Dimension: d.Charge, Scale: 1, Prefixable: true},
	{Symbol: "V", Name: "volt", Aliases: []string{"volt", "volts"}, Dimension: d.Voltage, Scale: 1, Prefixable: true},
	{Symbol: "ohm", Name: "ohm", Aliases: []string{"Ω", "ohms"}, Dimension: resistance, Scale: 1, Prefixable: true},
	{Symbol: "F", Name: "farad", Aliases: []string{"farad", "farads"}, Dimension: capacitance, Scale: 1, Prefixable: true},
	{Symbol: "S", Name: "siemens", Aliases: []string{"siemens"}, Dimension: resistance.Inverse(), Scale: 1, Prefixable: true},
	{Symbol: "Wb", Name: "weber", Aliases: []string{"weber", "webers"}, Dimension: flux, Scale: 1, Prefixable: true},
	{Symbol: "T", Name: "tesla", Aliases: []string{"tesla", "teslas"}, Dimension: fluxDensity, Scale: 1, Prefixable: true},
	{Symbol: "H", Name: "henry", Aliases: []string{"henry", "henries"}, Dimension: inductance, Scale: 1, Prefixable: true},
	{Symbol: "lm", Name: "lumen", Aliases: []string{"lumen", "lumens"}, Dimension: d.LuminousIntensity.Dimension(), Scale: 1, Prefixable: true},
	{Symbol: "lx", Name: "lux", Aliases: []string{"lux"}, Dimension: d.Of(d.LuminousIntensity.Pow(1), d.Length.Pow(-2)), Scale: 1, Prefixable: true},
	{Symbol: "Gy", Name: "gray", Aliases: []string{"gray", "grays"}, Dimension: dose, Scale: 1, Prefixable: true},
	{Symbol: "Sv", Name: "sievert", Aliases: []string{"sievert", "sieverts"}, Dimension: dose, Scale: 1, Prefixable: true},
	{Symbol: "kat", Name: "katal", Aliases: []string{"katal", "katals"}, Dimension: d.Of(d.Amount.Pow(1), d.Time.Pow(-1)), Scale: 1, Prefixable: true},
	{Symbol: "L", Name: "litre", Aliases: []string{"l", "liter", "liters", "litre", "litres"}, Dimension: d.Volume, Scale: 1e-3, Prefixable: true},

	// Length
	{Symbol: "mi", Name: "mile", Aliases: []string{"mile", "miles"}, Dimension: length, Scale: mile},
	{Symbol: "marathon", Name: "marathon", Aliases: []string{"marathons"}, Dimension: length, Scale: marathon},
	{Symbol: "ft", Name: "foot", Aliases: []string{"foot", "feet"}, Dimension: length, Scale: 0.3048},
	{Symbol: "in", Name: "inch", Aliases: []string{"inch", "inches"}, Dimension: length, Scale: 0.0254},
	{Symbol: "yd", Name: "yard", Aliases: []string{"yard", "yards"}, Dimension: length, Scale: 0.9144},
	{Symbol: "nmi", Name: "nautical mile", Dimension: length, Scale: 1852},

	// Time
	{Symbol: "min", Name: "minute", Aliases: []string{"minute", "minutes", "mins"}, Dimension: time, Scale: 60},
	{Symbol: "hr", Name: "hour", Aliases: []string{"h", "hrs", "hour", "hours"}, Dimension: time, Scale: 3600},
	{Symbol: "day", Name: "day", Aliases: []string{"days"}, Dimension: time, Scale: 86400},

	// Mass, speed, energy, pressure
	{Symbol: "lb", Name: "pound", Aliases: []string{"lbs", "pound", "pounds"}, Dimension: mass, Scale: 0.45359237},
	{Symbol: "mph", Name: "miles per hour", Dimension: d.Speed, Scale: mile / 3600},
	{Symbol: "kph", Name: "kilometres per hour", Aliases: []string{"kmh"}, Dimension: d.Speed, Scale: 1000.0 / 3600},
	{Symbol: "eV", Name: "electronvolt", Aliases: []string{"electronvolt", "electronvolts"}, Dimension: d.Energy, Scale: 1.602176634e-19, Prefixable: true},
	{Symbol: "cal", Name: "calorie", Aliases: []string{"calorie", "calories"}, Dimension: d.Energy, Scale: 4.184, Prefixable: true},
	{Symbol: "Btu", Name: "British thermal unit", Aliases: []string{"btu", "BTU"}, Dimension: d.Energy, Scale: 1055.05585},
	{Symbol: "bar", Name: "bar", Aliases: []string{"bars"}, Dimension: d.Pressure, Scale: 1e5, Prefixable: true},
	{Symbol: "atm", Name: "standard atmosphere", Dimension: d.Pressure, Scale: 101325},

	// Temperature
	{Symbol: "R", Name: "rankine", Aliases: []string{"rankine"}, Dimension: temp, Scale: rankine},
	{Symbol: "degC", Name: "degree Celsius", Aliases: []string{"°C", "celsius"}, Dimension: temp, Scale: 1, Offset: 273.15},
	{Symbol: "degF", Name: "degree Fahrenheit", Aliases: []string{"°F", "fahrenheit"}, Dimension: temp, Scale: rankine, Offset: 459.67 * rankine},
}
