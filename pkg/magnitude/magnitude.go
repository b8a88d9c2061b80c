// Package magnitude defines the numeric payloads a quantity can carry.
// A quantity only ever talks to its magnitude through the Magnitude
// interface, so the unit bookkeeping stays independent of whether the
// payload is a single float or a whole array.
package magnitude

// Magnitude is the capability set quantities need from a payload. All
// values are in SI base units by the time they reach these methods.
// Binary operations may fail with SHAPE_MISMATCH.
type Magnitude[M any] interface {
	Add(o M) (M, error)
	Sub(o M) (M, error)
	Mul(o M) (M, error)
	Div(o M) (M, error)
	// Affine returns v*scale + offset, element-wise.
	Affine(scale, offset float64) M
	// Unscale inverts Affine: (v - offset) / scale.
	Unscale(scale, offset float64) M
	Pow(p float64) M
	Neg() M
	Len() int
	Equal(o M) (bool, error)
	// ApproxEqual compares with tol used as both absolute and relative tolerance.
	ApproxEqual(o M, tol float64) (bool, error)
	Format(precision int) string
}

// Ordered is implemented by magnitudes with a total order.
type Ordered[M any] interface {
	Cmp(o M) int
}

// DefaultTolerance is used by callers that do not pick their own.
const DefaultTolerance = 1e-9
