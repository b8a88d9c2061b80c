package dimension

import "strings"

// Frequently used derived dimensions.
var (
	Area         = Of(Length.Pow(2))
	Volume       = Of(Length.Pow(3))
	Speed        = Of(Length.Pow(1), Time.Pow(-1))
	Acceleration = Of(Length.Pow(1), Time.Pow(-2))
	Frequency    = Of(Time.Pow(-1))
	Force        = Of(Mass.Pow(1), Length.Pow(1), Time.Pow(-2))
	Energy       = Of(Mass.Pow(1), Length.Pow(2), Time.Pow(-2))
	Power        = Of(Mass.Pow(1), Length.Pow(2), Time.Pow(-3))
	Pressure     = Of(Mass.Pow(1), Length.Pow(-1), Time.Pow(-2))
	Charge       = Of(Current.Pow(1), Time.Pow(1))
	Voltage      = Of(Mass.Pow(1), Length.Pow(2), Time.Pow(-3), Current.Pow(-1))
)

var names = map[Dimension]string{
	Dimensionless:                 "dimensionless",
	Length.Dimension():            "length",
	Mass.Dimension():              "mass",
	Time.Dimension():              "time",
	Current.Dimension():           "current",
	Temperature.Dimension():       "temperature",
	Amount.Dimension():            "amount",
	LuminousIntensity.Dimension(): "luminous intensity",
	Area:                          "area",
	Volume:                        "volume",
	Speed:                         "speed",
	Acceleration:                  "acceleration",
	Frequency:                     "frequency",
	Force:                         "force",
	Energy:                        "energy",
	Power:                         "power",
	Pressure:                      "pressure",
	Charge:                        "charge",
	Voltage:                       "voltage",
}

// Name returns a human name such as "speed" or "energy" for well-known
// dimensions, and "" otherwise.
func (d Dimension) Name() string {
	return names[d]
}

// ByName is the inverse of Name. Matching ignores case.
func ByName(name string) (Dimension, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d, n := range names {
		if n == name {
			return d, true
		}
	}
	return Dimension{}, false
}
