// Package dimension implements the algebra of physical dimensions.
//
// A Dimension is an immutable vector of rational exponents over the seven
// SI base dimensions (length L, mass M, time T, electric current I,
// thermodynamic temperature Θ, amount of substance N and luminous
// intensity J). Dimensions are plain comparable values: two dimensions are
// equal under == exactly when every exponent matches, and the zero value
// is the dimensionless dimension.
//
//	speed := dimension.Of(dimension.Length.Pow(1), dimension.Time.Pow(-1))
//	accel := speed.Div(dimension.Time.Dimension())
//	fmt.Println(accel) // L T^-2
//
// Dimensions are derived through Mul, Div, Pow, PowInt and Root, none of
// which can fail except Root with a non-positive index.
package dimension
